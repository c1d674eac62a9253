package models

// Resource - единица техники или оборудования на карте
type Resource struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Status     string   `json:"status"`
	Location   Location `json:"location"`
	AssignedTo string   `json:"assigned_to,omitempty"`
	// DistanceMeters заполняется только при поиске ближайших ресурсов
	DistanceMeters float64 `json:"distance_meters,omitempty"`
}

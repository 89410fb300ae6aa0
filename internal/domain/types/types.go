// Package types contains shapes shared between the app service and the
// HTTP adapter.
package types

// SeatAssignment is the read shape of one seat in the current binding.
// Price and Color are zero-valued until a colorize pass runs.
type SeatAssignment struct {
	SeatID            string  `json:"seat_id"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	DistanceFromStage float64 `json:"distance_from_stage"`
	QuantileRank      float64 `json:"quantile_rank"`
	Price             float64 `json:"price,omitempty"`
	Color             string  `json:"color,omitempty"`
	Fill              string  `json:"fill"`
}

// BindingInfo summarizes a freshly bound diagram.
type BindingInfo struct {
	ID           string  `json:"id"`
	Encoding     string  `json:"encoding"`
	SeatCount    int     `json:"seat_count"`
	DiagramWidth float64 `json:"diagram_width"`
	StageCenterX float64 `json:"stage_center_x"`
	StageBottomY float64 `json:"stage_bottom_y"`
}

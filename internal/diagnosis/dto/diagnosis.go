package dto

import "time"

type DiagnoseRequest struct {
	Crop        string `form:"crop" binding:"required"`
	Description string `form:"description"`
}

type DiagnoseResponse struct {
	DiagnosisID string    `json:"diag_id"`
	Crop        string    `json:"crop"`
	Result      string    `json:"result"`
	Timestamp   time.Time `json:"ts"`
}

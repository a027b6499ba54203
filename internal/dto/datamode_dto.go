package dto

type SetDataModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=mock remote"`
}

type DataModeResponse struct {
	Mode             string `json:"mode"`
	RemoteConfigured bool   `json:"remoteConfigured"`
}

package model

type GenerateRequestBody struct {
	Params  Params   `json:"params"`
	Seed    *uint32  `json:"seed,omitempty"`
	Volumes Volumes  `json:"volumes,omitempty"`
	Fx      *FxPatch `json:"fx,omitempty"`
}

type GenerateResponse struct {
	Seed     uint32   `json:"seed"`
	Song     Song     `json:"song"`
	Playback Playback `json:"playback"`
}

type ExportRequestBody struct {
	Params      Params        `json:"params"`
	Seed        *uint32       `json:"seed,omitempty"`
	Instruments InstrumentMap `json:"instruments,omitempty"`
}

type DefaultsResponse struct {
	Params      Params        `json:"params"`
	Volumes     Volumes       `json:"volumes"`
	Fx          FxParams      `json:"fx"`
	Instruments InstrumentMap `json:"instruments"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

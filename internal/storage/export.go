package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Populations []int `json:"populations"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, populations []int) error {
	data := ExportData{
		RunMetadata: *meta,
		Populations: populations,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

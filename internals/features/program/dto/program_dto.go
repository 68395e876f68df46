package dto

import (
	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/program/model"
)

type ProgramImageUpsertRequest struct {
	ProgramImageURL string `json:"program_image_url"`
}

type ProgramImageResponse struct {
	ProgramImageKey string  `json:"program_image_key"`
	ProgramImageURL *string `json:"program_image_url"`
}

// MaterializeAll mengembalikan SEMUA key yang dikenal; slot tanpa row di
// database tetap muncul dengan URL null.
func MaterializeAll(rows []model.ProgramImageModel) []ProgramImageResponse {
	byKey := make(map[string]*string, len(rows))
	for i := range rows {
		byKey[rows[i].ProgramImageKey] = rows[i].ProgramImageURL
	}

	out := make([]ProgramImageResponse, 0, len(constants.ProgramKeys))
	for _, key := range constants.ProgramKeys {
		out = append(out, ProgramImageResponse{
			ProgramImageKey: key,
			ProgramImageURL: byKey[key],
		})
	}
	return out
}

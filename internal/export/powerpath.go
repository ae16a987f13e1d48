// Package export writes the two output shapes: the original question
// schema and the PowerPath schema.
package export

import (
	"qedit/internal/dataset"
)

// PowerPathQuestion is one question in the PowerPath export schema.
// Metadata, Explanation, and ReferenceText are fixed nulls in this
// export; the question-level explanation only surfaces on correct
// responses.
type PowerPathQuestion struct {
	Material      string              `json:"material"`
	Metadata      *string             `json:"metadata"`
	Explanation   *string             `json:"explanation"`
	ReferenceText *string             `json:"referenceText"`
	Difficulty    int                 `json:"difficulty"`
	Responses     []PowerPathResponse `json:"responses"`
}

// PowerPathResponse is one answer option in the PowerPath schema.
type PowerPathResponse struct {
	Label       string  `json:"label"`
	IsCorrect   bool    `json:"isCorrect"`
	Explanation *string `json:"explanation"`
}

// BuildPowerPath projects items into the PowerPath schema. The shared
// explanation is copied onto correct responses only; incorrect ones
// carry null.
func BuildPowerPath(items []*dataset.Item) []PowerPathQuestion {
	questions := make([]PowerPathQuestion, 0, len(items))
	for _, item := range items {
		q := item.Question
		explanation := q.Explanation()

		choiceList := q.Choices()
		responses := make([]PowerPathResponse, 0, len(choiceList))
		for _, choice := range choiceList {
			response := PowerPathResponse{
				Label:     choice.Text,
				IsCorrect: choice.IsCorrect,
			}
			if choice.IsCorrect && explanation != "" {
				shared := explanation
				response.Explanation = &shared
			}
			responses = append(responses, response)
		}

		questions = append(questions, PowerPathQuestion{
			Material:   q.Material(),
			Difficulty: q.Difficulty(),
			Responses:  responses,
		})
	}
	return questions
}

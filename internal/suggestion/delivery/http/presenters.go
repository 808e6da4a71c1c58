package http

import "mcal/internal/suggestion"

type suggestReq struct {
	Text     string `json:"text"`
	ImageB64 string `json:"image_b64"`
}

func (r suggestReq) toInput() suggestion.Input {
	return suggestion.Input{Text: r.Text, ImageB64: r.ImageB64}
}

type suggestResp struct {
	Proposals []suggestion.Proposal `json:"proposals"`
	Provider  string                `json:"provider"`
	Model     string                `json:"model"`
}

func newSuggestResp(out suggestion.SuggestOutput) suggestResp {
	proposals := out.Proposals
	if proposals == nil {
		proposals = []suggestion.Proposal{}
	}
	return suggestResp{Proposals: proposals, Provider: out.Provider, Model: out.Model}
}

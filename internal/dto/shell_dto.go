package dto

type SummaryViewDTO struct {
	Text          string  `json:"text"`
	Summary       string  `json:"summary"`
	Words         int     `json:"words"`
	Chars         int     `json:"chars"`
	AvgWordLength float64 `json:"avg_word_length"`
	Loading       bool    `json:"loading"`
	Error         string  `json:"error,omitempty"`
}

type AccountDTO struct {
	SignedIn     bool   `json:"signed_in"`
	UserID       string `json:"user_id,omitempty"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

type MenuItemDTO struct {
	View          string `json:"view"`
	Label         string `json:"label"`
	RequiresLogin bool   `json:"requires_login"`
}

type ShellViewDTO struct {
	View           string        `json:"view"`
	Theme          string        `json:"theme"`
	SidebarOpen    bool          `json:"sidebar_open"`
	Menu           []MenuItemDTO `json:"menu"`
	SignedIn       bool          `json:"signed_in"`
	SignInRequired bool          `json:"sign_in_required"`
}

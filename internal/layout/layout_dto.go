package layout

type Chrome struct {
	Header         bool `json:"header"`
	ProfileSidebar bool `json:"profileSidebar"`
}

// Page describes one client route. Roles is empty for public pages.
type Page struct {
	Path  string   `json:"path"`
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
}

func (p Page) Public() bool {
	return len(p.Roles) == 0
}

type PageView struct {
	Page      Page              `json:"page"`
	Params    map[string]string `json:"params,omitempty"`
	Chrome    Chrome            `json:"chrome"`
	Dashboard string            `json:"dashboard,omitempty"`
}

type ResolveRequest struct {
	Path string `form:"path" binding:"required"`
}

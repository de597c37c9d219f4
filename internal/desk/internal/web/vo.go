package web

import "github.com/ecodeclub/campus/internal/desk/internal/domain"

type UpdateReq struct {
	Folders *[]any          `json:"folders"`
	Files   *[]any          `json:"files"`
	Layout  *map[string]any `json:"layout"`
}

type Desk struct {
	Id      int64          `json:"id"`
	UserId  int64          `json:"userId"`
	Folders []any          `json:"folders"`
	Files   []any          `json:"files"`
	Layout  map[string]any `json:"layout"`
	Ctime   int64          `json:"ctime"`
	Utime   int64          `json:"utime"`
}

func newDesk(d domain.Desk) Desk {
	folders := d.Folders
	if folders == nil {
		folders = []any{}
	}
	files := d.Files
	if files == nil {
		files = []any{}
	}
	layout := d.Layout
	if layout == nil {
		layout = map[string]any{}
	}
	return Desk{
		Id:      d.Id,
		UserId:  d.Uid,
		Folders: folders,
		Files:   files,
		Layout:  layout,
		Ctime:   d.Ctime,
		Utime:   d.Utime,
	}
}

type DeskResp struct {
	Message string `json:"message,omitempty"`
	Desk    Desk   `json:"desk"`
}

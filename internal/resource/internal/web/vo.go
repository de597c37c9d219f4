package web

import "github.com/ecodeclub/campus/internal/resource/internal/domain"

type Uploader struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Resource struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Branch      string   `json:"branch"`
	Semester    int      `json:"semester"`
	Subject     string   `json:"subject"`
	FileURL     string   `json:"fileUrl"`
	FileType    string   `json:"fileType"`
	Likes       int64    `json:"likes"`
	Dislikes    int64    `json:"dislikes"`
	Uploader    Uploader `json:"uploader"`
	Ctime       int64    `json:"ctime"`
	Utime       int64    `json:"utime"`
}

func newResource(r domain.Resource) Resource {
	return Resource{
		Id:          r.Id,
		Title:       r.Title,
		Description: r.Description,
		Branch:      r.Branch,
		Semester:    r.Semester,
		Subject:     r.Subject,
		FileURL:     r.FileURL,
		FileType:    r.FileType,
		Likes:       r.Likes,
		Dislikes:    r.Dislikes,
		Uploader: Uploader{
			Id:     r.Uploader.Id,
			Name:   r.Uploader.Name,
			Avatar: r.Uploader.Avatar,
		},
		Ctime: r.Ctime,
		Utime: r.Utime,
	}
}

type UploadReq struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Branch      string `form:"branch" binding:"required"`
	Semester    int    `form:"semester" binding:"required,min=1,max=8"`
	Subject     string `form:"subject" binding:"required"`
}

type ListReq struct {
	Branch   string `form:"branch"`
	Semester int    `form:"semester" binding:"omitempty,min=1,max=8"`
	Subject  string `form:"subject"`
	Search   string `form:"search"`
}

type ListResp struct {
	Resources []Resource `json:"resources"`
}

type ResourceResp struct {
	Resource Resource `json:"resource"`
}

type UploadResp struct {
	Message  string   `json:"message"`
	Resource Resource `json:"resource"`
}

type ReactResp struct {
	Message  string   `json:"message"`
	Resource Resource `json:"resource"`
}

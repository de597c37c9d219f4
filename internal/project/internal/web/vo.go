package web

import (
	"github.com/ecodeclub/campus/internal/project/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type CreateReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Tags        []string `json:"tags"`
}

type ListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=planning in-progress completed on-hold"`
	Search string `form:"search"`
}

type UpdateReq struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" binding:"omitempty,oneof=planning in-progress completed on-hold"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	Tags        *[]string `json:"tags"`
}

type AddMemberReq struct {
	UserId int64 `json:"userId" binding:"required"`
}

type UploadResourceReq struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}

type UserSummary struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Member struct {
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Branch string `json:"branch"`
	Year   int    `json:"year"`
}

type Project struct {
	Id            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Creator       UserSummary `json:"creator"`
	Members       []int64     `json:"members"`
	MemberDetails []Member    `json:"memberDetails,omitempty"`
	Status        string      `json:"status"`
	StartDate     string      `json:"startDate,omitempty"`
	EndDate       string      `json:"endDate,omitempty"`
	Tags          []string    `json:"tags"`
	Resources     []Resource  `json:"projectResources,omitempty"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

type Resource struct {
	Id          int64       `json:"id"`
	ProjectId   int64       `json:"projectId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	FileURL     string      `json:"fileUrl"`
	FileType    string      `json:"fileType"`
	Uploader    UserSummary `json:"uploader"`
	Ctime       int64       `json:"ctime"`
	Utime       int64       `json:"utime"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Creator:     newUserSummary(p.Creator),
		Members:     p.Members,
		MemberDetails: slice.Map(p.MemberDetails, func(idx int, src domain.Member) Member {
			return Member{
				Id:     src.Id,
				Name:   src.Name,
				Avatar: src.Avatar,
				Branch: src.Branch,
				Year:   src.Year,
			}
		}),
		Status:    p.Status,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Tags:      p.Tags,
		Resources: slice.Map(p.Resources, func(idx int, src domain.Resource) Resource {
			return newResource(src)
		}),
		Ctime: p.Ctime,
		Utime: p.Utime,
	}
}

func newResource(r domain.Resource) Resource {
	return Resource{
		Id:          r.Id,
		ProjectId:   r.ProjectId,
		Title:       r.Title,
		Description: r.Description,
		FileURL:     r.FileURL,
		FileType:    r.FileType,
		Uploader:    newUserSummary(r.Uploader),
		Ctime:       r.Ctime,
		Utime:       r.Utime,
	}
}

func newUserSummary(u domain.UserSummary) UserSummary {
	return UserSummary{Id: u.Id, Name: u.Name, Avatar: u.Avatar}
}

type ProjectResp struct {
	Message string  `json:"message,omitempty"`
	Project Project `json:"project"`
}

type ListResp struct {
	Projects []Project `json:"projects"`
}

type ResourceResp struct {
	Message  string   `json:"message"`
	Resource Resource `json:"resource"`
}

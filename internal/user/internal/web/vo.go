package web

import "github.com/ecodeclub/campus/internal/user/internal/domain"

type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Branch   string `json:"branch"`
	Year     int    `json:"year" binding:"omitempty,min=1,max=4"`
	Semester int    `json:"semester" binding:"omitempty,min=1,max=8"`
	Role     string `json:"role" binding:"omitempty,oneof=student admin"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileReq struct {
	Name     *string `json:"name"`
	Branch   *string `json:"branch"`
	Year     *int    `json:"year" binding:"omitempty,min=1,max=4"`
	Semester *int    `json:"semester" binding:"omitempty,min=1,max=8"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}

// User 对外的用户信息，注意没有密码
type User struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Branch   string `json:"branch"`
	Year     int    `json:"year"`
	Semester int    `json:"semester"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

func newUser(u domain.User) User {
	return User{
		Id:       u.Id,
		Name:     u.Name,
		Email:    u.Email,
		Branch:   u.Branch,
		Year:     u.Year,
		Semester: u.Semester,
		Role:     u.Role,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}

type AuthResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type ProfileResp struct {
	User User `json:"user"`
}

type UpdateProfileResp struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

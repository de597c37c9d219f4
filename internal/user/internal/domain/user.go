package domain

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	Id    int64
	Name  string
	Email string
	// bcrypt 之后的密码，永远不会出现在任何响应里
	Password string
	Branch   string
	// 学年 1-4
	Year int
	// 学期 1-8
	Semester int
	Role     string
	Avatar   string
	Bio      string
	Ctime    int64
	Utime    int64
}

// UserUpdate 稀疏更新。nil 表示请求里没带这个字段，
// 区别于带了但是是零值，避免空串没法清空字段的老毛病
type UserUpdate struct {
	Name     *string
	Branch   *string
	Year     *int
	Semester *int
	Bio      *string
	Avatar   *string
}

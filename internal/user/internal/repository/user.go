package repository

import (
	"context"

	"github.com/ecodeclub/campus/internal/user/internal/domain"
	"github.com/ecodeclub/campus/internal/user/internal/repository/cache"
	"github.com/ecodeclub/campus/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm"
)

var (
	ErrUserDuplicate = dao.ErrUserDuplicate
	ErrUserNotFound  = gorm.ErrRecordNotFound
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	// UpdateProfile 只更新 upd 里非 nil 的字段
	UpdateProfile(ctx context.Context, id int64, upd domain.UserUpdate) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 回写失败不影响主流程
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(_ int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) UpdateProfile(ctx context.Context, id int64, upd domain.UserUpdate) error {
	updates := make(map[string]any, 6)
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Branch != nil {
		updates["branch"] = *upd.Branch
	}
	if upd.Year != nil {
		updates["year"] = *upd.Year
	}
	if upd.Semester != nil {
		updates["semester"] = *upd.Semester
	}
	if upd.Bio != nil {
		updates["bio"] = *upd.Bio
	}
	if upd.Avatar != nil {
		updates["avatar"] = *upd.Avatar
	}
	err := ur.dao.UpdateProfile(ctx, id, updates)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, id)
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		Branch:   u.Branch,
		Year:     u.Year,
		Semester: u.Semester,
		Role:     u.Role,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Name:     ue.Name,
		Email:    ue.Email,
		Password: ue.Password,
		Branch:   ue.Branch,
		Year:     ue.Year,
		Semester: ue.Semester,
		Role:     ue.Role,
		Avatar:   ue.Avatar,
		Bio:      ue.Bio,
		Ctime:    ue.Ctime,
		Utime:    ue.Utime,
	}
}

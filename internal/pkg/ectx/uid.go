package ectx

import "github.com/gin-gonic/gin"

const uidCtxKey = "_uid"

// UidFromCtx 取出登录校验塞进去的 uid，没有登录态时返回 0
func UidFromCtx(ctx *gin.Context) int64 {
	val, ok := ctx.Get(uidCtxKey)
	if !ok {
		return 0
	}
	uid, _ := val.(int64)
	return uid
}

// CtxWithUid 登录校验中间件和测试用来构造登录态
func CtxWithUid(ctx *gin.Context, uid int64) {
	ctx.Set(uidCtxKey, uid)
}

package cache

import (
	"context"
	"time"

	usermodel "autopile/app/dal/user"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var userInfoPolicy = Policy{Sliding: 12 * time.Hour}

// UserInfoCache is read-through on profile fetch and overwritten on profile
// update (the caller already holds the fresh value then).
type UserInfoCache struct {
	cache *Cache[*usermodel.UserInfo]
}

func NewUserInfoCache(rds *redis.Redis) *UserInfoCache {
	return &UserInfoCache{cache: New[*usermodel.UserInfo](rds)}
}

func (c *UserInfoCache) Get(ctx context.Context, userId int64) (*usermodel.UserInfo, bool) {
	return c.cache.Get(ctx, UserKey(userId))
}

func (c *UserInfoCache) Set(ctx context.Context, userId int64, info *usermodel.UserInfo) {
	c.cache.Set(ctx, UserKey(userId), info, userInfoPolicy)
}

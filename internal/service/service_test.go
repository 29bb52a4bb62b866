package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skolmaten/internal/auth"
	"skolmaten/internal/db"
	"skolmaten/internal/logging"
	"skolmaten/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	gormDB, err := db.NewSQLite(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}

type testServices struct {
	users       repository.UserRepository
	credentials CredentialService
	tokens      TokenService
	auth        AuthService
	menu        MenuService
	comments    CommentService
	cache       *memoryCache
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	gormDB := newTestDB(t)
	log := logging.Discard()

	users := repository.NewUserRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	cache := newMemoryCache()

	credentials := NewCredentialService(users, auth.NewPasswordHasher(bcrypt.MinCost), log)
	tokens := NewTokenService(users, auth.NewJWTService("test-secret"), log)
	return &testServices{
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		auth:        NewAuthService(credentials, tokens),
		menu:        NewMenuService(repository.NewMenuRepository(gormDB), commentRepo, cache, log),
		comments:    NewCommentService(commentRepo, log),
		cache:       cache,
	}
}

// memoryCache is an in-process stand-in for the Redis cache.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if ok {
		c.hits++
	}
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(string(c.data[key]), 10, 64)
	n++
	c.data[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

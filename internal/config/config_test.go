package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DB_DRIVER", "DATABASE_DSN", "REDIS_ADDR", "REDIS_DB",
		"TOKEN_SECRET", "BCRYPT_COST", "ADMIN_NAME", "ADMIN_PASSWORD", "S3_REGION",
	} {
		t.Setenv(key, "")
	}

	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "8080", c.ServerPort)
	assert.Equal(t, DriverMySQL, c.DBDriver)
	assert.Equal(t, 0, c.RedisDB)
	assert.Equal(t, bcrypt.DefaultCost, c.BcryptCost)
	assert.Equal(t, "adminacc", c.AdminName)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Empty(t, c.TokenSecret)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:menu.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("BCRYPT_COST", "not-a-number")

	c := Load()

	assert.Equal(t, "9090", c.ServerPort)
	assert.Equal(t, DriverSQLite, c.DBDriver)
	assert.Equal(t, "file:menu.db", c.DatabaseDSN)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, "s3cret", c.TokenSecret)
	assert.Equal(t, bcrypt.DefaultCost, c.BcryptCost, "unparsable ints fall back to the default")
}

func TestValidate(t *testing.T) {
	valid := Config{DBDriver: DriverSQLite, TokenSecret: "k", BcryptCost: bcrypt.MinCost}
	require.NoError(t, valid.Validate())

	noSecret := valid
	noSecret.TokenSecret = ""
	assert.Error(t, noSecret.Validate())

	badDriver := valid
	badDriver.DBDriver = "oracle"
	assert.Error(t, badDriver.Validate())

	badCost := valid
	badCost.BcryptCost = 99
	assert.Error(t, badCost.Validate())
}

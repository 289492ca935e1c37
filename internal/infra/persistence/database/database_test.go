package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN("fintaa", "secret", "127.0.0.1", "3306", "site")
	assert.Equal(t, "fintaa:secret@tcp(127.0.0.1:3306)/site?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true", dsn)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := SQLiteDSN("/tmp/site.db")
	assert.Contains(t, dsn, "file:/tmp/site.db?")
	assert.Contains(t, dsn, "_pragma=foreign_keys(1)")
	assert.Contains(t, dsn, "_pragma=busy_timeout(10000)")
}

func TestDialectOf(t *testing.T) {
	tests := []struct {
		name    string
		dbType  string
		want    string
		wantErr bool
	}{
		{name: "sqlite", dbType: "sqlite", want: "sqlite3"},
		{name: "mariadb 按 mysql 处理", dbType: "mariadb", want: "mysql"},
		{name: "postgres", dbType: "postgres", want: "postgres"},
		{name: "未知类型", dbType: "oracle", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DialectOf(tt.dbType)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

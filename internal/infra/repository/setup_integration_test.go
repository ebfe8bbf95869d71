//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"venue-booking-engine/internal/infra/db"
	"venue-booking-engine/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerHost string
	containerPort nat.Port
	containerErr  error
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDBName   = "test_db"
)

func startPostgres(t *testing.T) {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:16-alpine",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     testUser,
					"POSTGRES_PASSWORD": testPassword,
					"POSTGRES_DB":       testDBName,
				},
				WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
			},
			Started: true,
		})
		if err != nil {
			containerErr = err
			return
		}

		containerHost, containerErr = container.Host(ctx)
		if containerErr != nil {
			return
		}
		containerPort, containerErr = container.MappedPort(ctx, "5432/tcp")
	})
	require.NoError(t, containerErr, "failed to start postgres container")
}

// setupPool connects to the shared container and applies the schema. Tests
// call truncateAll before seeding to stay independent.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	startPostgres(t)

	cfg := config.DBConfig{
		Host:     containerHost,
		Port:     containerPort.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   testDBName,
		SSLMode:  "disable",
	}

	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, db.EnsureSchema(ctx, pool))

	truncateAll(t, pool)
	return pool
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	for _, table := range []string{"bookings", "resources", "users"} {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

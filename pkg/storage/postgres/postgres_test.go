package postgres_test

import (
	"context"
	"database/sql"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage/postgres"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "evdemand"

	squareWKT = "POLYGON((13.4 52.5,13.5 52.5,13.5 52.6,13.4 52.6,13.4 52.5))"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForListeningPort("5432"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{Container: container, Host: host, Port: port.Int()}, nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	pg, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 1,
	})
	require.NoError(t, err)
	require.NoError(t, pg.Ping(ctx))

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(pg.DB.(*sql.DB), filepath.Join("..", "..", "..", "migrations")))

	return pg, func() {
		_ = pg.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func analysis(t *testing.T, pc string, population, stations int, withGeo bool) *domain.DemandAnalysis {
	t.Helper()
	code := domain.MustPostalCode(pc)
	pop, err := domain.NewPopulationData(code, population)
	require.NoError(t, err)

	var geo *domain.GeoLocation
	if withGeo {
		g, err := domain.NewGeoLocationFromWKT(code, squareWKT)
		require.NoError(t, err)
		geo = &g
	}

	a, err := domain.NewDemandAnalysis(pop, stations, geo)
	require.NoError(t, err)

	return a
}

package pg

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/boardkit-dev/boardkit/shared/config"
	"github.com/boardkit-dev/boardkit/shared/domain"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "boardkit"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("migrations", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// the container restarts itself after the first startup, so wait
			// for the readiness log twice
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	storage, err := New(&config.Config{Private: config.Private{Pg: config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName}}})
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// createTestAccount registers a throwaway account with a unique email.
func createTestAccount(t *testing.T) domain.Account {
	t.Helper()
	email := fmt.Sprintf("user%d@example.com", rand.Int63())
	account, err := storage.SaveAccount(context.Background(), email, "irrelevant-hash")
	if err != nil {
		t.Fatalf("failed to create test account: %s", err)
	}
	return account
}

// createTestBoard creates a board under the given account.
func createTestBoard(t *testing.T, accountId domain.AccountId) domain.Board {
	t.Helper()
	board, err := storage.CreateBoard(context.Background(), domain.BoardCreationData{
		AccountId: accountId,
		Name:      "Test Board",
		Color:     "#e3e3e3",
	})
	if err != nil {
		t.Fatalf("failed to create test board: %s", err)
	}
	return board
}

func createTestColumn(t *testing.T, boardId domain.BoardId, name string) domain.Column {
	t.Helper()
	column, err := storage.CreateColumn(context.Background(), domain.ColumnCreationData{
		Id:      domain.NewEntityId(),
		BoardId: boardId,
		Name:    name,
	})
	if err != nil {
		t.Fatalf("failed to create test column: %s", err)
	}
	return column
}

func createTestItem(t *testing.T, columnId domain.ColumnId, title string) domain.Item {
	t.Helper()
	item, err := storage.CreateItem(context.Background(), domain.ItemCreationData{
		Id:       domain.NewEntityId(),
		ColumnId: columnId,
		Title:    title,
	})
	if err != nil {
		t.Fatalf("failed to create test item: %s", err)
	}
	return item
}

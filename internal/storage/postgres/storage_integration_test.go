//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/platform/db/migrator"
)

const (
	pgImage = "postgres:17.0-alpine3.20"

	pgUser       = "field-orders-user"
	pgPass       = "12CXZ43_U_w"
	pgDB         = "field-orders-db"
	migrationDir = "../../../migrations"
)

var (
	ctx context.Context

	pgC  *tcpostgres.PostgresContainer
	pool *pgxpool.Pool

	kv *storage
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "KV Storage Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()

	By("starting postgres container")
	var err error
	pgC, err = tcpostgres.Run(ctx,
		pgImage,
		tcpostgres.WithDatabase(pgDB),
		tcpostgres.WithUsername(pgUser),
		tcpostgres.WithPassword(pgPass),
		tc.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	Expect(err).NotTo(HaveOccurred())

	dbURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	Expect(err).NotTo(HaveOccurred())

	By("creating pgx pool")
	pool, err = pgxpool.New(ctx, dbURL)
	Expect(err).NotTo(HaveOccurred())

	Eventually(func(g Gomega) {
		g.Expect(pool.Ping(ctx)).To(Succeed())
	}).WithTimeout(10 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())

	By("running migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), migrationDir)
	Expect(m.Up(ctx)).To(Succeed())
	defer m.Close()

	kv = NewStorage(pool)
})

var _ = AfterSuite(func() {
	if pool != nil {
		pool.Close()
	}
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE kv_entries")
	Expect(err).NotTo(HaveOccurred())
})

var _ = Describe("KV storage", func() {
	It("returns ErrKeyNotFound for a missing key", func() {
		_, err := kv.Get(ctx, "orders")
		Expect(err).To(MatchError(model.ErrKeyNotFound))
	})

	It("upserts and reads back the stored document", func() {
		Expect(kv.Set(ctx, "orders", []byte(`[{"orderNumber":"PO20240101001"}]`))).To(Succeed())
		Expect(kv.Set(ctx, "orders", []byte(`[]`))).To(Succeed())

		got, err := kv.Get(ctx, "orders")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(got)).To(MatchJSON(`[]`))

		var rows int
		Expect(pool.QueryRow(ctx, `SELECT count(*) FROM kv_entries`).Scan(&rows)).To(Succeed())
		Expect(rows).To(Equal(1))
	})

	It("keeps keys independent", func() {
		Expect(kv.Set(ctx, "orders", []byte(`[]`))).To(Succeed())
		Expect(kv.Set(ctx, "products", []byte(`[{"sku":"1","status":"outOfStock"}]`))).To(Succeed())

		got, err := kv.Get(ctx, "products")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(got)).To(MatchJSON(`[{"sku":"1","status":"outOfStock"}]`))
	})
})

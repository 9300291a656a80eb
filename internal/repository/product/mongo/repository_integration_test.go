//go:build integration

package mongo

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/field-orders/internal/model"
	"github.com/you-humble/field-orders/internal/repository/product/static"
	"github.com/you-humble/field-orders/platform/logger"
	tcmongo "github.com/you-humble/field-orders/platform/testcontainers/mongo"
)

var (
	ctx  context.Context
	mc   *tcmongo.Container
	repo *repository
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Product Catalog Mongo Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting mongo container")
	var err error
	mc, err = tcmongo.NewContainer(ctx, tcmongo.WithDatabase("catalog"))
	Expect(err).NotTo(HaveOccurred())

	coll := mc.Client().Database("catalog").Collection("products")
	Expect(EnsureIndexes(ctx, coll)).To(Succeed())
	repo = NewProductRepository(coll)

	By("seeding from the bundled dataset")
	src, err := static.NewProductRepository()
	Expect(err).NotTo(HaveOccurred())
	Expect(ProductsBootstrap(ctx, repo, src.All())).To(Succeed())
	Expect(ProductsBootstrap(ctx, repo, src.All())).To(Succeed())
})

var _ = AfterSuite(func() {
	if mc != nil {
		_ = mc.Terminate(ctx)
	}
})

var _ = Describe("Product repository", func() {
	It("seeds once", func() {
		src, err := static.NewProductRepository()
		Expect(err).NotTo(HaveOccurred())

		n, err := repo.Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(len(src.All())))
	})

	It("matches barcodes by substring", func() {
		got, err := repo.ListProducts(ctx, model.ProductsFilter{Barcode: "451000"})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(2))
		Expect(got[0].SKU).To(Equal("100"))
	})

	It("matches names case-insensitively", func() {
		got, err := repo.ListProducts(ctx, model.ProductsFilter{Name: "GRANOLA"})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(2))
	})

	It("finds by sku", func() {
		got, err := repo.ListProducts(ctx, model.ProductsFilter{SKU: "310"})
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Name).To(Equal("Dark Roast Coffee Beans"))
	})
})

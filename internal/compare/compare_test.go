package compare_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/smithberg/aspectlab/internal/compare"
	"github.com/smithberg/aspectlab/internal/config"
	"github.com/smithberg/aspectlab/internal/sample"
)

var _ = Describe("Run", func() {
	var (
		cfg *config.Config
		log *zap.SugaredLogger
	)

	writeTable := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "zones.csv")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		log = zap.NewNop().Sugar()
	})

	Context("with a well-formed survey table", func() {
		BeforeEach(func() {
			cfg.Input = writeTable(
				"aspect,pine,fir\n" +
					"10,3,0\n20,4,1\n30,2,0\n40,3,1\n" +
					"190,0,4\n200,1,5\n210,0,3\n220,0,4\n")
		})

		It("expands each species to the sum of its counts", func() {
			out, err := compare.Run(cfg, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Samples[0].Len()).To(Equal(13))
			Expect(out.Samples[1].Len()).To(Equal(18))
			Expect(out.Samples[0].Len()).To(Equal(out.Table.Total(0)))
			Expect(out.Samples[1].Len()).To(Equal(out.Table.Total(1)))
		})

		It("detects the opposed clusters as significantly different", func() {
			out, err := compare.Run(cfg, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Test.Ok()).To(BeTrue())
			Expect(out.Test.PValue).To(BeNumerically("<", cfg.Alpha))
		})

		It("keeps descriptive statistics within their domains", func() {
			out, err := compare.Run(cfg, log)
			Expect(err).NotTo(HaveOccurred())
			for _, st := range out.Stats {
				Expect(st.MeanDeg).To(And(
					BeNumerically(">=", 0),
					BeNumerically("<", 360),
				))
				Expect(st.Resultant).To(And(
					BeNumerically(">=", 0),
					BeNumerically("<=", 1),
				))
			}
		})

		It("is deterministic across repeated runs", func() {
			first, err := compare.Run(cfg, log)
			Expect(err).NotTo(HaveOccurred())
			second, err := compare.Run(cfg, log)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.Test.Statistic).To(Equal(first.Test.Statistic))
			Expect(second.Test.PValue).To(Equal(first.Test.PValue))
			Expect(second.Stats).To(Equal(first.Stats))
		})
	})

	Context("with the two-zone example table", func() {
		It("expands pine to [45 45] and fir to [180 180 180]", func() {
			cfg.Input = writeTable("aspect,pine,fir\n45,2,0\n180,0,3\n")

			out, err := compare.Run(cfg, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Samples[0].Degrees).To(Equal([]float64{45, 45}))
			Expect(out.Samples[1].Degrees).To(Equal([]float64{180, 180, 180}))
		})
	})

	Context("when one species has no observations", func() {
		It("aborts before the statistical test", func() {
			cfg.Input = writeTable("aspect,pine,fir\n45,2,0\n180,3,0\n")

			out, err := compare.Run(cfg, log)
			Expect(err).To(MatchError(sample.ErrEmptySample))
			Expect(out).To(BeNil())
		})
	})

	Context("when invalid rows hide a species' only observations", func() {
		It("drops the rows and then aborts", func() {
			cfg.Input = writeTable("aspect,pine,fir\n45,2,0\n,0,3\n180,1,-2\n")

			_, err := compare.Run(cfg, log)
			Expect(err).To(MatchError(sample.ErrEmptySample))
		})
	})

	Context("when the input file does not exist", func() {
		It("returns the loader error", func() {
			cfg.Input = filepath.Join(GinkgoT().TempDir(), "missing.csv")

			_, err := compare.Run(cfg, log)
			Expect(err).To(HaveOccurred())
		})
	})
})

package receipt

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("CompareTotals", func() {
	printed := decimal.RequireFromString("308.00")

	It("should match a rounding artifact", func() {
		Expect(CompareTotals(printed, decimal.RequireFromString("308.004"))).To(BeTrue())
	})

	It("should not match a different total", func() {
		Expect(CompareTotals(printed, decimal.RequireFromString("309.00"))).To(BeFalse())
	})
})

var _ = Describe("CheckTotal", func() {
	DescribeTable("checking the printed total",
		func(printed decimal.NullDecimal, computed string, expected TotalCheck) {
			r := &Receipt{
				TotalFromReceipt: printed,
				TotalComputed:    decimal.RequireFromString(computed),
			}
			Expect(CheckTotal(r)).To(Equal(expected))
		},
		Entry("equal totals", decimal.NewNullDecimal(decimal.RequireFromString("308")), "308.00", TotalMatch),
		Entry("totals a cent apart", decimal.NewNullDecimal(decimal.RequireFromString("308")), "308.01", TotalMismatch),
		Entry("no printed total", decimal.NullDecimal{}, "308.00", TotalUnchecked),
	)

	It("should describe each outcome", func() {
		Expect(TotalMatch.String()).To(Equal("OK ✅"))
		Expect(TotalMismatch.String()).To(Equal("NOT MATCH ❌"))
		Expect(TotalUnchecked.String()).To(Equal("no total to check against"))
	})
})

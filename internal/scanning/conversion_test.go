package scanning

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeText", func() {
	It("should keep valid UTF-8 as is", func() {
		Expect(DecodeText([]byte("ИТОГО:\n308,00"))).To(Equal("ИТОГО:\n308,00"))
	})

	It("should replace invalid bytes instead of failing", func() {
		text := DecodeText([]byte("ИТОГО:\xff\n308,00"))
		Expect(text).To(Equal("ИТОГО:\uFFFD\n308,00"))
	})

	It("should drop a leading byte order mark", func() {
		Expect(DecodeText([]byte("\xef\xbb\xbfВремя:"))).To(Equal("Время:"))
	})

	It("should fold windows line endings", func() {
		Expect(DecodeText([]byte("1.\r\nName\r\n"))).To(Equal("1.\nName\n"))
	})

	It("should compose decomposed letters", func() {
		Expect(DecodeText([]byte("\u0438\u0306"))).To(Equal("\u0439"))
	})
})

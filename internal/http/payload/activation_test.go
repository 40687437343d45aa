package payload_test

import (
	"net/http/httptest"
	"strings"

	"github.com/Christiandike/celo-mondo/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ActivationRequest", func() {
	var request payload.ActivationRequest

	BeforeEach(func() {
		request = payload.ActivationRequest{
			Address:         "0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62",
			TransactionHash: "0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36",
		}
	})

	It("accepts a well formed request", func() {
		Expect(request.Validate()).To(Succeed())
	})

	It("accepts mixed case hex", func() {
		request.Address = "0x2F25dEB341845CED7B535EEB7dd5b0aE1c2E2e62"
		Expect(request.Validate()).To(Succeed())
	})

	It("rejects a missing address", func() {
		request.Address = ""
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("rejects an address without the 0x prefix", func() {
		request.Address = "2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("rejects an address that is too short", func() {
		request.Address = "0x2f25deb341845ced"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("rejects a transaction hash of the wrong length", func() {
		request.TransactionHash = "0x7d4e54bc8b4d8707"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("rejects a transaction hash with non hex characters", func() {
		request.TransactionHash = "0xzz4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("maps onto an activation message", func() {
		msg := request.ToMessage()
		Expect(msg.Address).To(Equal(request.Address))
		Expect(msg.TransactionHash).To(Equal(request.TransactionHash))
	})
})

var _ = Describe("ActivationsQuery", func() {
	It("accepts an empty filter", func() {
		Expect(payload.ActivationsQuery{}.Validate()).To(Succeed())
	})

	It("accepts a staker address", func() {
		query := payload.ActivationsQuery{Staker: "0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62"}
		Expect(query.Validate()).To(Succeed())
	})

	It("rejects a malformed staker filter", func() {
		query := payload.ActivationsQuery{Staker: "grace"}
		Expect(query.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("DecodeValidator", func() {
	var validator payload.DecodeValidator

	It("decodes and validates a payload", func() {
		body := strings.NewReader(`{"address":"0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62","transactionHash":"0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36"}`)
		req := httptest.NewRequest("POST", "/mondo/activate", body)

		var request payload.ActivationRequest
		Expect(validator.DecodeAndValidateJSONPayload(req, &request)).To(Succeed())
		Expect(request.Address).To(Equal("0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62"))
	})

	It("rejects unknown fields", func() {
		body := strings.NewReader(`{"address":"0x2f25deb341845ced7b535eeb7dd5b0ae1c2e2e62","extra":true}`)
		req := httptest.NewRequest("POST", "/mondo/activate", body)

		var request payload.ActivationRequest
		Expect(validator.DecodeAndValidateJSONPayload(req, &request)).To(HaveOccurred())
	})

	It("rejects a payload that fails validation", func() {
		body := strings.NewReader(`{"address":"not-an-address","transactionHash":"0x7d4e54bc8b4d8707fb77a07fdc0b23bd92f18f9d2f9b94054f5b2a0dc0a48a36"}`)
		req := httptest.NewRequest("POST", "/mondo/activate", body)

		var request payload.ActivationRequest
		Expect(validator.DecodeAndValidateJSONPayload(req, &request)).To(HaveOccurred())
	})
})

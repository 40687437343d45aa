package jwt_test

import (
	"errors"
	"time"

	tokenIssuer "github.com/Christiandike/celo-mondo/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService("celo-mondo", []byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Username: "alice",
			Subject:  "user-1",
			TTL:      time.Hour,
		}
	})

	Describe("Generate and Sign", func() {
		It("produces a signed HS512 token carrying the expected claims", func() {
			token := service.Generate(info)
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["iss"]).To(Equal("celo-mondo"))
		})
	})

	Describe("Validate", func() {
		When("the token is signed with a different secret", func() {
			It("returns a not-valid error", func() {
				other := tokenIssuer.NewJWTService("celo-mondo", []byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, tokenIssuer.ErrTokenNotValid)).To(BeTrue())
			})
		})

		When("the token is garbage", func() {
			It("returns a parse error", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, tokenIssuer.ErrTokenNotValid)).To(BeTrue())
			})
		})

		When("the token has expired", func() {
			It("rejects it", func() {
				expired := info
				expired.TTL = -time.Hour
				signed, err := service.Sign(service.Generate(expired))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("expired"))
			})
		})
	})
})

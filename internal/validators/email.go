package validators

import (
	"context"
	"net"
	"strings"
)

// Resolver é o subconjunto de *net.Resolver usado aqui.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomainValidator aceita o domínio se ele tiver MX ou, na falta, algum IP.
type EmailDomainValidator struct {
	resolver Resolver
}

func NewEmailDomainValidator(r Resolver) *EmailDomainValidator {
	if r == nil {
		r = net.DefaultResolver
	}
	return &EmailDomainValidator{resolver: r}
}

func (v *EmailDomainValidator) IsValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := v.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := v.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer([]byte("secret"), time.Hour)

	signed, expiresAt, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if until := time.Until(expiresAt); until < 55*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry: %v", expiresAt)
	}

	userID, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestIssuer_Expired(t *testing.T) {
	iss := NewIssuer([]byte("secret"), time.Hour)

	signed, _, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Move the clock past the validity window.
	iss.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := iss.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_TamperedSignature(t *testing.T) {
	iss := NewIssuer([]byte("secret"), time.Hour)

	signed, _, err := iss.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := iss.Verify(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	signed, _, err := NewIssuer([]byte("one"), time.Hour).Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer([]byte("two"), time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_RejectsUnsignedAlg(t *testing.T) {
	// A forged token with alg=none and a future expiry must not pass. This is
	// exactly the hole a structural-only decode would leave open.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "user-1",
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	iss := NewIssuer([]byte("secret"), time.Hour)
	if _, err := iss.Verify(forged); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	iss := NewIssuer([]byte("secret"), time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := iss.Verify(tokenString); err != ErrInvalidToken {
			t.Fatalf("Verify(%q): expected ErrInvalidToken, got %v", tokenString, err)
		}
	}
}

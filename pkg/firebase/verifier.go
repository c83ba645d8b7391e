package firebase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	// ErrNotInitialized means Init was never called (or failed); distinct from a
	// rejected token so callers can surface it as a server-side fault.
	ErrNotInitialized = errors.New("firebase verifier not initialized")

	// ErrMalformedToken means the presented credential was empty or not a bearer token.
	ErrMalformedToken = errors.New("malformed identity token")

	// ErrInvalidToken means Firebase rejected the credential (bad signature, expired,
	// wrong audience) or verification timed out. Timeouts fail closed.
	ErrInvalidToken = errors.New("invalid identity token")
)

// IdentityToken is the subset of Firebase claims the backend trusts: a stable
// subject id and, when present, the phone number the user signed in with.
type IdentityToken struct {
	SubjectID string
	Phone     string
}

// Verifier validates Firebase ID tokens issued to the mobile app.
type Verifier struct {
	client  *auth.Client
	timeout time.Duration
}

var (
	mu              sync.Mutex
	defaultVerifier *Verifier
)

// Init sets up the process-wide verifier exactly once at startup.
// Subsequent calls are no-ops.
func Init(ctx context.Context, credentialsFile string, timeout time.Duration) error {
	mu.Lock()
	defer mu.Unlock()

	if defaultVerifier != nil {
		return nil
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return err
	}

	defaultVerifier = &Verifier{client: client, timeout: timeout}
	log.Println("[Firebase] Verifier initialized successfully")
	return nil
}

// Default returns the process-wide verifier set up by Init.
func Default() (*Verifier, error) {
	mu.Lock()
	defer mu.Unlock()
	if defaultVerifier == nil {
		return nil, ErrNotInitialized
	}
	return defaultVerifier, nil
}

// Verify validates the ID token against Firebase and extracts the subject id
// and optional phone number claim. No side effects.
func (v *Verifier) Verify(ctx context.Context, idToken string) (*IdentityToken, error) {
	if v == nil || v.client == nil {
		return nil, ErrNotInitialized
	}

	if strings.TrimSpace(idToken) == "" {
		return nil, ErrMalformedToken
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	decoded, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		log.Printf("[Firebase] Token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	token := &IdentityToken{SubjectID: decoded.UID}
	if phone, ok := decoded.Claims["phone_number"].(string); ok {
		token.Phone = phone
	}
	return token, nil
}

package auth

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gatekeeper/config"
)

// bcrypt.MinCost keeps the tests fast; production cost comes from config.
func newTestHasher() *bcryptHasher {
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	passwords := []string{
		"secret1",              // minimum allowed length
		"correct horse battery", // spaces are fine
		"p@sswörd-123",          // unicode
		"aaaaaaaaaaaaaaaaaaaa",  // maximum allowed length
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		require.NoError(t, err, "password: %s", password)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, password, hash)
		assert.True(t, hasher.Check(password, hash))
	}
}

func TestBcryptHasher_HashEmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	// Same plaintext, different salts, different digests.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_CheckMismatch(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secret1", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("secret1", ""))
}

func TestBcryptHasher_ConcurrentUse(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, hasher.Check("secret1", hash))

			fresh, hashErr := hasher.Hash("another-pass")
			assert.NoError(t, hashErr)
			assert.True(t, hasher.Check("another-pass", fresh))
		}()
	}
	wg.Wait()
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}

	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	impl, ok := hasher.(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, impl.cost)
}

package repository

import (
	"context"
	"strings"
	"sync"
	"testing"

	"store_api/internal/db/dbtest"
	"store_api/internal/domain"
	"store_api/internal/schema"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userInput(email string) map[string]any {
	return map[string]any{"name": "Jane Doe", "email": email, "password": "secret1"}
}

func productInput(createdBy string) map[string]any {
	return map[string]any{
		"name":        "Laptop",
		"description": "A portable computer",
		"price":       1200,
		"category":    "electronics",
		"createdBy":   createdBy,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(dbtest.New(t))

	created, err := users.Create(ctx, userInput("jane@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, schema.RoleUser, created.Role)
	assert.Empty(t, created.Password)

	got, err := users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Email("jane@example.com"), got.Email)
	assert.Empty(t, got.Password)

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Password)
}

func TestUserRepository_GetErrors(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(dbtest.New(t))

	_, err := users.Get(ctx, "invalid-id")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = users.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_CreateValidation(t *testing.T) {
	users := NewUserRepository(dbtest.New(t))

	_, err := users.Create(context.Background(), map[string]any{"name": "Jane"})
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Please provide an email", "Please provide a password"}, verr.Messages)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(dbtest.New(t))

	_, err := users.Create(ctx, userInput("dup@example.com"))
	require.NoError(t, err)
	_, err = users.Create(ctx, userInput("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserRepository_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(dbtest.New(t))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dups      int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := users.Create(ctx, userInput("race@example.com"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, ErrDuplicateKey):
				dups++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, dups)
}

func TestProductRepository_PopulatesCreator(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	users := NewUserRepository(gdb)
	products := NewProductRepository(gdb)

	user, err := users.Create(ctx, userInput("maker@example.com"))
	require.NoError(t, err)

	created, err := products.Create(ctx, productInput(user.ID))
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.CreatedBy)
	assert.True(t, created.InStock)
	assert.Nil(t, created.Creator)

	got, err := products.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Creator)
	assert.Equal(t, user.ID, got.Creator.ID)
	assert.Equal(t, "Jane Doe", got.Creator.Name)
	assert.Equal(t, "maker@example.com", got.Creator.Email)

	all, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Creator)
	assert.Equal(t, user.ID, all[0].Creator.ID)
}

func TestProductRepository_DanglingCreator(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepository(dbtest.New(t))

	created, err := products.Create(ctx, productInput(uuid.NewString()))
	require.NoError(t, err)

	got, err := products.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Creator)
}

func TestProductRepository_GetErrors(t *testing.T) {
	ctx := context.Background()
	products := NewProductRepository(dbtest.New(t))

	_, err := products.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = products.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositories_DeleteAll(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	users := NewUserRepository(gdb)
	products := NewProductRepository(gdb)

	user, err := users.Create(ctx, userInput("a@example.com"))
	require.NoError(t, err)
	_, err = products.Create(ctx, productInput(user.ID))
	require.NoError(t, err)

	require.NoError(t, products.DeleteAll(ctx))
	require.NoError(t, users.DeleteAll(ctx))

	us, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, us)
	ps, err := products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ps)

	// The email is free again once the collection is cleared.
	_, err = users.Create(ctx, userInput("a@example.com"))
	assert.NoError(t, err)
}

func TestUserRepository_EmailIsExactMatch(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(dbtest.New(t))

	_, err := users.Create(ctx, userInput("Case@Example.io"))
	require.NoError(t, err)
	_, err = users.Create(ctx, userInput("case@example.io"))
	assert.NoError(t, err)
}

func TestUserRepository_LongNameAccepted(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(dbtest.New(t))

	in := userInput("long@example.com")
	in["name"] = strings.Repeat("n", 300)
	created, err := users.Create(ctx, in)
	require.NoError(t, err)

	got, err := users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Name, 300)
}

func TestUserRepository_EmailLengthBound(t *testing.T) {
	users := NewUserRepository(dbtest.New(t))

	_, err := users.Create(context.Background(), userInput(strings.Repeat("e", 251)+"@x.io"))
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Email cannot be more than 255 characters"}, verr.Messages)
}

package services

import (
	"sort"
	"time"

	"logistik_backend/internal/auth"
	"logistik_backend/internal/models"
	"logistik_backend/internal/repositories"
)

// In-memory repository fakes with call counters for interaction checks.

type fakeUserRepo struct {
	users map[string]*models.User

	createCalls            int
	setRefreshTokenCalls   int
	updateCredentialsCalls int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByRefreshToken(refreshToken, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.RefreshToken != nil && *u.RefreshToken == refreshToken {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.createCalls++
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = models.NewID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateProfile(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SetRefreshToken(userID string, refreshToken *string) error {
	r.setRefreshTokenCalls++
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

func (r *fakeUserRepo) UpdateCredentials(userID, passwordHash, refreshToken string) error {
	r.updateCredentialsCalls++
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.RefreshToken = &refreshToken
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*models.Token // keyed by code
}

func newFakeTokenRepo(tokens ...*models.Token) *fakeTokenRepo {
	r := &fakeTokenRepo{tokens: make(map[string]*models.Token)}
	for _, tok := range tokens {
		r.tokens[tok.Code] = tok
	}
	return r
}

func (r *fakeTokenRepo) Create(token *models.Token) error {
	if token.ID == "" {
		token.ID = models.NewID()
	}
	r.tokens[token.Code] = token
	return nil
}

func (r *fakeTokenRepo) FindByCode(code string) (*models.Token, error) {
	if tok, ok := r.tokens[code]; ok {
		return tok, nil
	}
	return nil, repositories.ErrTokenNotFound
}

func (r *fakeTokenRepo) MarkVerified(id string, verifiedAt, expiresAt time.Time) error {
	for _, tok := range r.tokens {
		if tok.ID == id {
			tok.VerifiedAt = &verifiedAt
			tok.ExpiresAt = expiresAt
			return nil
		}
	}
	return repositories.ErrTokenNotFound
}

func (r *fakeTokenRepo) DeleteByCode(code string) error {
	if _, ok := r.tokens[code]; !ok {
		return repositories.ErrTokenNotFound
	}
	delete(r.tokens, code)
	return nil
}

type fakePackageRepo struct {
	packages map[string]*models.Package

	advanceCalls int
	// forceNotClaimed makes every AdvanceStatus report a lost claim.
	forceNotClaimed bool
}

func newFakePackageRepo(packages ...*models.Package) *fakePackageRepo {
	r := &fakePackageRepo{packages: make(map[string]*models.Package)}
	for _, p := range packages {
		r.packages[p.ID] = p
	}
	return r
}

func (r *fakePackageRepo) Create(pkg *models.Package) error {
	if pkg.ID == "" {
		pkg.ID = models.NewID()
	}
	r.packages[pkg.ID] = pkg
	return nil
}

func (r *fakePackageRepo) FindByID(id string) (*models.Package, error) {
	if p, ok := r.packages[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrPackageNotFound
}

func (r *fakePackageRepo) FindByUser(userID string, page, pageSize int) ([]models.Package, int64, error) {
	var owned []models.Package
	for _, p := range r.packages {
		if p.UserID == userID {
			owned = append(owned, *p)
		}
	}
	// newest first; KSUIDs sort by creation time
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })

	total := int64(len(owned))
	start := (page - 1) * pageSize
	if start >= len(owned) {
		return []models.Package{}, total, nil
	}
	end := start + pageSize
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], total, nil
}

func (r *fakePackageRepo) AdvanceStatus(id string, from, to models.PackageStatus, nextTransitionAt *time.Time) (bool, error) {
	r.advanceCalls++
	if r.forceNotClaimed {
		return false, nil
	}
	p, ok := r.packages[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	p.NextTransitionAt = nextTransitionAt
	return true, nil
}

func (r *fakePackageRepo) FindDue(now time.Time, limit int) ([]models.Package, error) {
	var due []models.Package
	for _, p := range r.packages {
		if p.NextTransitionAt != nil && !p.NextTransitionAt.After(now) {
			due = append(due, *p)
		}
		if len(due) == limit {
			break
		}
	}
	return due, nil
}

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(
		"logistik-test",
		"access-secret", "refresh-secret", "reset-secret",
		time.Hour, 4*24*time.Hour, 30*time.Minute,
	)
}

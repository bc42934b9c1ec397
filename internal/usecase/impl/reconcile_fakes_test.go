package impl

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/google/uuid"
)

// memoryStore backs the in-memory repositories used by the reconciliation scenario tests.
type memoryStore struct {
	mu              sync.Mutex
	partners        map[uuid.UUID]*entity.Partner
	users           []*entity.User
	categories      []*entity.ServiceCategory
	servicePartners map[uuid.UUID]*entity.ServicePartner // keyed by user id
	clock           time.Time

	listErr         error
	listErrAtOffset int
	categoryErr     error
	spCreateErr     error
	nilUserPhone    string // FindByEmailOrPhone answers (nil, nil) for this phone
	categoryCalls   int
	spCreates       int
	spUpdates       int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		partners:        map[uuid.UUID]*entity.Partner{},
		servicePartners: map[uuid.UUID]*entity.ServicePartner{},
		clock:           time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		listErrAtOffset: -1,
	}
}

func (s *memoryStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)

	return s.clock
}

func (s *memoryStore) addPartner(p *entity.Partner) *entity.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.tick()
	}
	s.partners[p.ID] = clonePartner(p)

	return p
}

func (s *memoryStore) addCategory(name string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := &entity.ServiceCategory{ID: uuid.New(), Name: name}
	s.categories = append(s.categories, category)

	return category.ID
}

func (s *memoryStore) addUser(u *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = s.tick()
	cloned := *u
	s.users = append(s.users, &cloned)

	return u
}

func (s *memoryStore) putServicePartner(sp *entity.ServicePartner) *entity.ServicePartner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}
	s.servicePartners[sp.UserID] = sp.Clone()

	return sp
}

func (s *memoryStore) servicePartnerOf(userID uuid.UUID) *entity.ServicePartner {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.servicePartners[userID].Clone()
}

func (s *memoryStore) userByPhone(phone string) []*entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []*entity.User
	for _, u := range s.users {
		if u.Phone == phone {
			cloned := *u
			users = append(users, &cloned)
		}
	}

	return users
}

func (s *memoryStore) snapshotServicePartners() map[uuid.UUID]*entity.ServicePartner {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uuid.UUID]*entity.ServicePartner, len(s.servicePartners))
	for userID, sp := range s.servicePartners {
		snapshot[userID] = sp.Clone()
	}

	return snapshot
}

func clonePartner(p *entity.Partner) *entity.Partner {
	cloned := *p
	cloned.ServiceCategories = slices.Clone(p.ServiceCategories)
	cloned.Documents = slices.Clone(p.Documents)

	return &cloned
}

type memoryPartnerRepo struct{ store *memoryStore }

func (r *memoryPartnerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Partner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.partners[id]
	if !ok {
		return nil, repository.ErrPartnerNotFound
	}

	return clonePartner(p), nil
}

func (r *memoryPartnerRepo) List(_ context.Context, opts repository.ListPartnersOptions) ([]*entity.Partner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.listErr != nil && opts.Offset == r.store.listErrAtOffset {
		return nil, r.store.listErr
	}

	all := make([]*entity.Partner, 0, len(r.store.partners))
	for _, p := range r.store.partners {
		all = append(all, clonePartner(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if opts.Offset >= len(all) {
		return []*entity.Partner{}, nil
	}
	end := min(opts.Offset+opts.Limit, len(all))

	return all[opts.Offset:end], nil
}

func (r *memoryPartnerRepo) Update(_ context.Context, partner *entity.Partner) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.partners[partner.ID]; !ok {
		return repository.ErrPartnerNotFound
	}
	partner.UpdatedAt = r.store.tick()
	r.store.partners[partner.ID] = clonePartner(partner)

	return nil
}

type memoryUserRepo struct{ store *memoryStore }

func (r *memoryUserRepo) FindByEmailOrPhone(_ context.Context, email, phone string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.nilUserPhone != "" && phone == r.store.nilUserPhone {
		return nil, nil
	}

	var match *entity.User
	for _, u := range r.store.users {
		if (email != "" && u.Email == email) || (phone != "" && u.Phone == phone) {
			if match == nil || u.CreatedAt.Before(match.CreatedAt) {
				match = u
			}
		}
	}
	if match == nil {
		return nil, repository.ErrUserNotFound
	}
	cloned := *match

	return &cloned, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = r.store.tick()
	user.UpdatedAt = user.CreatedAt
	cloned := *user
	r.store.users = append(r.store.users, &cloned)

	return nil
}

type memoryCategoryRepo struct{ store *memoryStore }

func (r *memoryCategoryRepo) FindByNames(_ context.Context, names []string) ([]*entity.ServiceCategory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.categoryCalls++
	if r.store.categoryErr != nil {
		return nil, r.store.categoryErr
	}

	var found []*entity.ServiceCategory
	for _, c := range r.store.categories {
		if slices.Contains(names, c.Name) {
			cloned := *c
			found = append(found, &cloned)
		}
	}

	return found, nil
}

type memoryServicePartnerRepo struct{ store *memoryStore }

func (r *memoryServicePartnerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.ServicePartner, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sp, ok := r.store.servicePartners[userID]
	if !ok {
		return nil, repository.ErrServicePartnerNotFound
	}

	return sp.Clone(), nil
}

func (r *memoryServicePartnerRepo) Create(_ context.Context, sp *entity.ServicePartner) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.spCreateErr != nil {
		return r.store.spCreateErr
	}
	if _, ok := r.store.servicePartners[sp.UserID]; ok {
		return errors.WithStack(repository.ErrServicePartnerExists)
	}
	sp.ID = uuid.New()
	sp.CreatedAt = r.store.tick()
	sp.UpdatedAt = sp.CreatedAt
	r.store.servicePartners[sp.UserID] = sp.Clone()
	r.store.spCreates++

	return nil
}

func (r *memoryServicePartnerRepo) Update(_ context.Context, sp *entity.ServicePartner) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.servicePartners[sp.UserID]; !ok {
		return repository.ErrServicePartnerNotFound
	}
	sp.UpdatedAt = r.store.tick()
	r.store.servicePartners[sp.UserID] = sp.Clone()
	r.store.spUpdates++

	return nil
}

// plainHasher avoids bcrypt cost in scenario tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	err    error
	events []*service.ServicePartnerSyncedEvent
}

func (p *recordingPublisher) PublishServicePartnerSynced(_ context.Context, event *service.ServicePartnerSyncedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

package v1

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/service"
	"github.com/fitpulse/gym-api/internal/store"
	"github.com/fitpulse/gym-api/internal/utils"
)

var (
	_ serviceStore             = (*fakeStore)(nil)
	_ service.UserStore        = (*fakeStore)(nil)
	_ service.ApplicationStore = (*fakeStore)(nil)
	_ service.RoleStore        = (*fakeStore)(nil)
)

// fakeStore is an in-memory stand-in for *store.Store, covering both the
// handlers' serviceStore interface and the service-layer interfaces.
type fakeStore struct {
	users   map[string]*models.User
	posts   map[uint]*models.ForumPost
	classes []*models.Class
	apps    map[uint]*models.TrainerApplication
	nextApp uint
	books   []*models.Booking
	subs    []*models.NewsletterSubscriber
	reviews []*models.Review
	slots   map[string]*models.Slot

	failRoleWrite bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[string]*models.User{},
		posts:   map[uint]*models.ForumPost{},
		apps:    map[uint]*models.TrainerApplication{},
		nextApp: 1,
		slots:   map[string]*models.Slot{},
	}
}

/* ---- users ---- */

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) CreateUserIfAbsent(_ context.Context, u *models.User) (bool, error) {
	if _, ok := f.users[u.Email]; ok {
		return false, nil
	}
	u.ID = uint(len(f.users) + 1)
	f.users[u.Email] = u
	return true, nil
}

func (f *fakeStore) GetTrainerByName(_ context.Context, name string) (*models.User, error) {
	for _, u := range f.users {
		if u.Role == models.RoleTrainer && u.Name == name {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) GetTrainerByPhotoURL(_ context.Context, photoURL string) (*models.User, error) {
	for _, u := range f.users {
		if u.Role == models.RoleTrainer && u.PhotoURL == photoURL {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) GetRoleDefaulting(ctx context.Context, email string) (models.Role, error) {
	u, err := f.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Role == "" {
		u.Role = models.RoleMember
	}
	return u.Role, nil
}

func (f *fakeStore) SetUserRoleByEmail(_ context.Context, email string, role models.Role) error {
	if f.failRoleWrite {
		return utils.ErrNotFound
	}
	if u, ok := f.users[email]; ok {
		u.Role = role
	}
	return nil
}

func (f *fakeStore) ListUsers(context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListUsersByRole(_ context.Context, role models.Role) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertProfile(_ context.Context, email string, fields map[string]interface{}) error {
	u, ok := f.users[email]
	if !ok {
		u = &models.User{ID: uint(len(f.users) + 1), Email: email}
		f.users[email] = u
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["photo_url"].(string); ok {
		u.PhotoURL = v
	}
	return nil
}

/* ---- classes ---- */

func (f *fakeStore) CreateClass(_ context.Context, c *models.Class) error {
	c.ID = uint(len(f.classes) + 1)
	f.classes = append(f.classes, c)
	return nil
}

func (f *fakeStore) ListClasses(_ context.Context, page store.PageRequest, search string) ([]*models.Class, int64, error) {
	var matched []*models.Class
	for _, c := range f.classes {
		if search == "" || strings.Contains(strings.ToLower(c.Title), strings.ToLower(search)) {
			matched = append(matched, c)
		}
	}
	total := int64(len(matched))
	lo := page.Offset()
	if lo > len(matched) {
		lo = len(matched)
	}
	hi := lo + page.Limit
	if hi > len(matched) {
		hi = len(matched)
	}
	return matched[lo:hi], total, nil
}

func (f *fakeStore) LatestClasses(_ context.Context, n int) ([]*models.Class, error) {
	var out []*models.Class
	for i := len(f.classes) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.classes[i])
	}
	return out, nil
}

func (f *fakeStore) ListClassesByTitle(_ context.Context, title string) ([]*models.Class, error) {
	var out []*models.Class
	for _, c := range f.classes {
		if c.Title == title {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) GetClassByID(_ context.Context, id string) (*models.Class, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}
	for _, c := range f.classes {
		if c.ID == uint(n) {
			return c, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) UpdateClassFields(_ context.Context, id string, fields map[string]interface{}) error {
	c, err := f.GetClassByID(context.Background(), id)
	if err != nil {
		return err
	}
	if v, ok := fields["cover_img"].(string); ok {
		c.CoverImg = v
	}
	return nil
}

/* ---- forum ---- */

func (f *fakeStore) CreateForumPost(_ context.Context, p *models.ForumPost) error {
	p.ID = uint(len(f.posts) + 1)
	f.posts[p.ID] = p
	return nil
}

func (f *fakeStore) orderedPosts() []*models.ForumPost {
	out := make([]*models.ForumPost, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeStore) ListForumPosts(_ context.Context, page store.PageRequest) ([]*models.ForumPost, int64, error) {
	all := f.orderedPosts()
	total := int64(len(all))
	lo := page.Offset()
	if lo > len(all) {
		lo = len(all)
	}
	hi := lo + page.Limit
	if hi > len(all) {
		hi = len(all)
	}
	return all[lo:hi], total, nil
}

func (f *fakeStore) LatestForumPosts(_ context.Context, n int) ([]*models.ForumPost, error) {
	all := f.orderedPosts()
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (f *fakeStore) VotePost(_ context.Context, postID string, dir store.VoteDirection) (*models.ForumPost, error) {
	n, err := strconv.Atoi(postID)
	if err != nil {
		return nil, utils.ErrNotFound
	}
	p, ok := f.posts[uint(n)]
	if !ok {
		return nil, utils.ErrNotFound
	}
	if dir == store.VoteDown {
		p.DownVotes++
	} else {
		p.UpVotes++
	}
	return p, nil
}

/* ---- trainer applications ---- */

func (f *fakeStore) CreateApplication(_ context.Context, a *models.TrainerApplication) error {
	a.ID = f.nextApp
	f.nextApp++
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	f.apps[a.ID] = a
	return nil
}

func (f *fakeStore) GetApplicationByID(_ context.Context, id string) (*models.TrainerApplication, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}
	if a, ok := f.apps[uint(n)]; ok {
		return a, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) ListApplicationsByStatus(_ context.Context, statuses ...models.ApplicationStatus) ([]*models.TrainerApplication, error) {
	want := map[models.ApplicationStatus]bool{}
	for _, s := range statuses {
		want[s] = true
	}
	var out []*models.TrainerApplication
	for _, a := range f.apps {
		if want[a.Status] {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpsertApplicationStatus(_ context.Context, id string, status models.ApplicationStatus, feedback, email string) error {
	n, err := strconv.Atoi(id)
	if err != nil {
		return utils.ErrNotFound
	}
	a, ok := f.apps[uint(n)]
	if !ok {
		a = &models.TrainerApplication{ID: uint(n), Email: email}
		f.apps[a.ID] = a
		if a.ID >= f.nextApp {
			f.nextApp = a.ID + 1
		}
	}
	a.Status, a.Feedback = status, feedback
	return nil
}

func (f *fakeStore) DeleteApplication(_ context.Context, id string) error {
	n, err := strconv.Atoi(id)
	if err != nil {
		return utils.ErrNotFound
	}
	if _, ok := f.apps[uint(n)]; !ok {
		return utils.ErrNotFound
	}
	delete(f.apps, uint(n))
	return nil
}

/* ---- bookings ---- */

func (f *fakeStore) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = uint(len(f.books) + 1)
	f.books = append(f.books, b)
	return nil
}

func (f *fakeStore) GetBookingByEmail(_ context.Context, email string) (*models.Booking, error) {
	for _, b := range f.books {
		if b.UserEmail == email {
			return b, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeStore) SumBookingPrices(context.Context) (float64, error) {
	var total float64
	for _, b := range f.books {
		total += b.Price
	}
	return total, nil
}

func (f *fakeStore) CountPaidBookings(context.Context) (int64, error) {
	var n int64
	for _, b := range f.books {
		if b.Paid {
			n++
		}
	}
	return n, nil
}

/* ---- newsletter / reviews / slots ---- */

func (f *fakeStore) AddSubscriber(_ context.Context, sub *models.NewsletterSubscriber) error {
	sub.ID = uint(len(f.subs) + 1)
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeStore) ListSubscribers(context.Context) ([]*models.NewsletterSubscriber, error) {
	return f.subs, nil
}

func (f *fakeStore) CountSubscribers(context.Context) (int64, error) {
	return int64(len(f.subs)), nil
}

func (f *fakeStore) CreateReview(_ context.Context, r *models.Review) error {
	r.ID = uint(len(f.reviews) + 1)
	f.reviews = append(f.reviews, r)
	return nil
}

func (f *fakeStore) ListReviews(context.Context) ([]*models.Review, error) {
	return f.reviews, nil
}

func (f *fakeStore) CreateSlot(_ context.Context, slot *models.Slot) error {
	if slot.ID == "" {
		slot.ID = strconv.Itoa(len(f.slots) + 1)
	}
	f.slots[slot.ID] = slot
	return nil
}

func (f *fakeStore) ListSlots(_ context.Context, trainerEmail string) ([]*models.Slot, error) {
	var out []*models.Slot
	for _, s := range f.slots {
		if trainerEmail == "" || s.TrainerEmail == trainerEmail {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) ListSlotsByName(_ context.Context, slotName string) ([]*models.Slot, error) {
	var out []*models.Slot
	for _, s := range f.slots {
		if s.SlotName == slotName {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteSlot(_ context.Context, id string) error {
	if _, ok := f.slots[id]; !ok {
		return utils.ErrNotFound
	}
	delete(f.slots, id)
	return nil
}

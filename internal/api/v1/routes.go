package v1

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fitpulse/gym-api/internal/auth"
	"github.com/fitpulse/gym-api/internal/config"
	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/service"
	"github.com/fitpulse/gym-api/internal/store"
)

// serviceStore is everything the handlers ask of the document-store gateway.
// *store.Store satisfies it; tests plug in a fake.
type serviceStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetTrainerByName(ctx context.Context, name string) (*models.User, error)
	GetTrainerByPhotoURL(ctx context.Context, photoURL string) (*models.User, error)
	GetRoleDefaulting(ctx context.Context, email string) (models.Role, error)
	SetUserRoleByEmail(ctx context.Context, email string, role models.Role) error
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	UpsertProfile(ctx context.Context, email string, fields map[string]interface{}) error

	CreateClass(ctx context.Context, c *models.Class) error
	ListClasses(ctx context.Context, page store.PageRequest, search string) ([]*models.Class, int64, error)
	LatestClasses(ctx context.Context, n int) ([]*models.Class, error)
	ListClassesByTitle(ctx context.Context, title string) ([]*models.Class, error)
	GetClassByID(ctx context.Context, id string) (*models.Class, error)
	UpdateClassFields(ctx context.Context, id string, fields map[string]interface{}) error

	CreateForumPost(ctx context.Context, p *models.ForumPost) error
	ListForumPosts(ctx context.Context, page store.PageRequest) ([]*models.ForumPost, int64, error)
	LatestForumPosts(ctx context.Context, n int) ([]*models.ForumPost, error)
	VotePost(ctx context.Context, postID string, dir store.VoteDirection) (*models.ForumPost, error)

	CreateApplication(ctx context.Context, a *models.TrainerApplication) error
	GetApplicationByID(ctx context.Context, id string) (*models.TrainerApplication, error)
	ListApplicationsByStatus(ctx context.Context, statuses ...models.ApplicationStatus) ([]*models.TrainerApplication, error)
	DeleteApplication(ctx context.Context, id string) error

	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBookingByEmail(ctx context.Context, email string) (*models.Booking, error)
	SumBookingPrices(ctx context.Context) (float64, error)
	CountPaidBookings(ctx context.Context) (int64, error)

	AddSubscriber(ctx context.Context, sub *models.NewsletterSubscriber) error
	ListSubscribers(ctx context.Context) ([]*models.NewsletterSubscriber, error)
	CountSubscribers(ctx context.Context) (int64, error)

	CreateReview(ctx context.Context, r *models.Review) error
	ListReviews(ctx context.Context) ([]*models.Review, error)

	CreateSlot(ctx context.Context, slot *models.Slot) error
	ListSlots(ctx context.Context, trainerEmail string) ([]*models.Slot, error)
	ListSlotsByName(ctx context.Context, slotName string) ([]*models.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
}

type API struct {
	cfg    *config.Config
	router *chi.Mux
	store  *store.Store
}

func NewAPI(cfg *config.Config, s *store.Store) *API {
	api := &API{cfg: cfg, router: chi.NewRouter(), store: s}
	api.router.Use(middleware.Logger)
	api.routes()
	return api
}

func (a *API) Routes() *chi.Mux {
	return a.router
}

func (a *API) routes() {
	usvc := service.NewUserService(a.store)
	tsvc := service.NewTrainerService(a.store, a.store)

	authH := NewAuthHandler(a.cfg, usvc, a.store)
	userH := NewUserHandler(a.store, usvc)
	classH := NewClassHandler(a.store)
	forumH := NewForumHandler(a.store)
	trainerH := NewTrainerHandler(a.store, tsvc)
	billingH := NewBillingHandler(a.store)
	newsH := NewNewsletterHandler(a.store)
	reviewH := NewReviewHandler(a.store)
	imageH := NewImageHandler(a.store, a.cfg)

	authed := auth.Middleware(a.cfg)
	admin := auth.RequireRole(a.store, models.RoleAdmin)
	trainerOrAdmin := auth.RequireRole(a.store, models.RoleTrainer, models.RoleAdmin)
	selfOrAdmin := func(param string) func(next http.Handler) http.Handler {
		return auth.RequireSelfEmail(a.store, param)
	}

	r := a.router

	// credentials
	r.Post("/jwt", authH.IssueToken)
	r.Post("/auth/google", authH.GoogleSignIn)

	// users
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userH.CreateUser)
		r.With(authed, admin).Get("/", userH.ListUsers)
		// wider than owner-only: admin dashboards read other users' roles
		r.With(authed, selfOrAdmin("email")).Get("/role/{email}", userH.GetRole)
	})
	r.Patch("/updaterole", userH.SetMemberRole)
	r.With(authed, selfOrAdmin("email")).Get("/profile/{email}", userH.GetProfile)
	r.With(authed, selfOrAdmin("email")).Put("/profile/{email}", userH.UpdateProfile)

	// classes
	r.Get("/classes", classH.ListClasses)
	r.With(authed, admin).Post("/add-class", classH.AddClass)
	r.Get("/last-six-documents", classH.LatestClasses)
	r.With(authed, admin).Post("/classes/{id}/cover", imageH.UploadClassCover)

	// forum
	r.Get("/forum", forumH.ListPosts)
	r.With(authed, trainerOrAdmin).Post("/forum", forumH.CreatePost)
	r.Get("/latest/forum", forumH.LatestPosts)
	r.Patch("/posts/{postId}/upvote", forumH.Upvote)
	r.Patch("/posts/{postId}/downvote", forumH.Downvote)

	// trainer applications and slots
	r.Post("/apply-trainer", trainerH.Apply)
	r.With(authed, admin).Get("/get-trainers", trainerH.ListPending)
	r.With(authed, admin).Get("/applied-trainers/{id}", trainerH.GetApplication)
	r.With(authed, admin).Put("/update-trainer-status/{id}", trainerH.UpdateStatus)
	r.With(authed, admin).Delete("/applied-trainers/{id}", trainerH.DeleteApplication)
	r.With(authed).Get("/activity-log", trainerH.ActivityLog)
	r.Get("/trainer", trainerH.ListTrainers)
	r.Get("/trainers", trainerH.Directory)
	r.Get("/trainers/{name}", trainerH.GetTrainerByName)
	r.Get("/search-by-photo", trainerH.SearchByPhoto)
	r.Get("/trainer-classes-slots", trainerH.ClassesAndSlots)
	r.With(authed, trainerOrAdmin).Post("/slots", trainerH.CreateSlot)
	r.Get("/slots", trainerH.ListSlots)
	r.With(authed, trainerOrAdmin).Delete("/slots/{id}", trainerH.DeleteSlot)

	// payments and aggregates
	r.Post("/payment", billingH.RecordPayment)
	r.With(authed, selfOrAdmin("email")).Get("/booked-trainer/{email}", billingH.BookedTrainer)
	r.With(authed, admin).Get("/sum-of-prices", billingH.SumOfPrices)
	r.With(authed, admin).Get("/balance", billingH.Balance)
	r.With(authed, admin).Get("/stats", billingH.Stats)

	// newsletter and reviews
	r.Post("/subscribe", newsH.Subscribe)
	r.With(authed, admin).Get("/subscribers", newsH.ListSubscribers)
	r.With(authed).Post("/submit-feedback", reviewH.SubmitFeedback)
	r.Get("/review/data", reviewH.ListReviews)

	r.Get("/health", HealthHandler(a.store))
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tu-curso/course-service/internal/api/http/handlers"
	"github.com/tu-curso/course-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Admin          *handlers.AdminHandler
	Courses        *handlers.CoursesHandler
	Pomodoros      *handlers.PomodorosHandler
	Checkpoints    *handlers.CheckpointsHandler
	FriendRequests *handlers.FriendRequestsHandler
	Authenticator  *auth.Authenticator
	Policy         *auth.AccessPolicy
	Logger         *zap.Logger
}

// RegisterRoutes wires HTTP routes. The authenticator runs on every request
// and the access policy decides per path whether the caller may proceed.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Authenticator.Handle)
	app.Use(cfg.Policy.Enforce(cfg.Logger))

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/usuarios")
	users.Post("/crear", cfg.Users.Create)
	users.Post("/crear-admin", cfg.Users.CreateAdmin)
	users.Post("/crear-admin-dev", cfg.Users.CreateAdminDev)
	users.Post("/login", cfg.Users.Login)
	users.Post("/refresh-token", cfg.Users.Refresh)
	users.Get("/", cfg.Users.List)
	users.Patch("/:id", cfg.Users.Update)
	users.Get("/:usuarioId/amigos/contar", cfg.Users.CountFriends)
	users.Get("/:usuarioId/amigos/:amigoId/verificar", cfg.Users.VerifyFriendship)
	users.Post("/:usuarioId/amigos/:amigoId", cfg.Users.AddFriend)
	users.Delete("/:usuarioId/amigos/:amigoId", cfg.Users.RemoveFriend)
	users.Get("/:usuarioId/amigos", cfg.Users.Friends)
	users.Get("/:usuarioId/buscar-amigos", cfg.Users.SearchFriends)

	admin := app.Group("/admin")
	admin.Post("/login", cfg.Admin.Login)
	admin.Post("/registro-admin-dev", cfg.Admin.RegisterAdminDev)
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/usuarios", cfg.Admin.ListUsers)
	admin.Post("/usuarios/:id/eliminar", cfg.Admin.DeleteUser)
	admin.Post("/usuarios/:id/cambiar-password", cfg.Admin.ChangePassword)

	courses := app.Group("/cursos")
	courses.Post("/crear", cfg.Courses.Create)
	courses.Get("/", cfg.Courses.List)
	courses.Get("/contar/usuario/:usuarioId", cfg.Courses.CountByUser)
	courses.Get("/usuario/:usuarioId", cfg.Courses.ListByUser)
	courses.Patch("/:id", cfg.Courses.Update)
	courses.Delete("/:id", cfg.Courses.Delete)
	courses.Get("/:id", cfg.Courses.GetByID)

	pomodoros := app.Group("/pomodoros")
	pomodoros.Post("/crear", cfg.Pomodoros.Create)
	pomodoros.Get("/", cfg.Pomodoros.List)
	pomodoros.Get("/entre-fechas", cfg.Pomodoros.ListBetween)
	pomodoros.Get("/contar/usuario/:usuarioId", cfg.Pomodoros.CountByUser)
	pomodoros.Get("/usuario/:usuarioId", cfg.Pomodoros.ListByUser)
	pomodoros.Patch("/:id", cfg.Pomodoros.Update)
	pomodoros.Delete("/:id", cfg.Pomodoros.Delete)
	pomodoros.Get("/:id", cfg.Pomodoros.GetByID)

	checkpoints := app.Group("/puntos-de-control")
	checkpoints.Post("/crear", cfg.Checkpoints.Create)
	checkpoints.Get("/", cfg.Checkpoints.List)
	checkpoints.Get("/pendientes", cfg.Checkpoints.ListPending)
	checkpoints.Get("/contar/completados/curso/:cursoId", cfg.Checkpoints.CountCompletedByCourse)
	checkpoints.Get("/contar/curso/:cursoId", cfg.Checkpoints.CountByCourse)
	checkpoints.Get("/curso/:cursoId", cfg.Checkpoints.ListByCourse)
	checkpoints.Patch("/:id/completado", cfg.Checkpoints.SetCompleted)
	checkpoints.Patch("/:id", cfg.Checkpoints.Update)
	checkpoints.Delete("/:id", cfg.Checkpoints.Delete)
	checkpoints.Get("/:id", cfg.Checkpoints.GetByID)

	requests := app.Group("/solicitudes-amistad")
	requests.Post("/enviar", cfg.FriendRequests.Send)
	requests.Post("/:id/aceptar", cfg.FriendRequests.Accept)
	requests.Post("/:id/rechazar", cfg.FriendRequests.Reject)
	requests.Get("/verificar-pendiente", cfg.FriendRequests.ExistsPending)
	requests.Get("/contar-recibidas/:receptorId", cfg.FriendRequests.CountReceived)
	requests.Get("/recibidas/:receptorId", cfg.FriendRequests.ListReceived)
	requests.Get("/enviadas/:emisorId", cfg.FriendRequests.ListSent)
}

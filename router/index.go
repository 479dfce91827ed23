package router

import (
	"time"

	"driving_school_manager/handler"
	"driving_school_manager/middleware"
	"driving_school_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	gocache "github.com/patrickmn/go-cache"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	api.Use(middleware.RateLimiter(20, 40))
	v1 := api.Group("/v1")

	catalogCache := gocache.New(time.Minute, 5*time.Minute)

	instructor := v1.Group("/instructor")
	instructor.Get("/", handler.GetInstructors)
	instructor.Get("/:instructorId", validate.GetById("instructorId"), handler.GetInstructorById)
	instructor.Post("/", validate.CreateInstructor(), handler.CreateInstructor)
	instructor.Put("/:instructorId", validate.UpdateInstructor("instructorId"), handler.UpdateInstructor)
	instructor.Delete("/", validate.Delete(), handler.DeleteInstructor)

	lesson := v1.Group("/driving-lesson")
	lesson.Get("/", handler.GetDrivingLessons)
	lesson.Post("/", validate.CreateSlot(), handler.CreateDrivingLesson)
	lesson.Put("/:slotId", validate.UpdateSlot("slotId"), handler.UpdateDrivingLesson)
	lesson.Delete("/:slotId", validate.GetById("slotId"), handler.DeleteDrivingLesson)

	test := v1.Group("/driving-test")
	test.Get("/", handler.GetDrivingTests)
	test.Post("/", validate.CreateSlot(), handler.CreateDrivingTest)
	test.Put("/:slotId", validate.UpdateSlot("slotId"), handler.UpdateDrivingTest)
	test.Delete("/:slotId", validate.GetById("slotId"), handler.DeleteDrivingTest)

	ticket := v1.Group("/ticket/classes")
	ticket.Get("/", handler.GetTicketClasses)
	ticket.Get("/:classId", validate.GetById("classId"), handler.GetTicketClassById)
	ticket.Post("/", validate.CreateTicketClass(), handler.CreateTicketClass)
	ticket.Post("/:classId/requests", validate.GetById("classId"), validate.CreateStudentRequest(), handler.CreateStudentRequest)
	ticket.Patch("/:classId", validate.GetById("classId"), validate.EnrollmentAction(), handler.UpdateEnrollment)
	ticket.Put("/:classId", validate.UpdateTicketClass("classId"), handler.UpdateTicketClass)
	ticket.Delete("/:classId", validate.GetById("classId"), handler.DeleteTicketClass)

	location := v1.Group("/location", middleware.Cache(catalogCache, time.Minute))
	location.Get("/", handler.GetLocations)
	location.Get("/:slug", handler.GetLocationBySlug)
	location.Post("/", validate.CreateLocation(), handler.CreateLocation)
	location.Put("/:locationId", validate.UpdateLocation("locationId"), handler.UpdateLocation)
	location.Delete("/", validate.Delete(), handler.DeleteLocation)

	product := v1.Group("/product", middleware.Cache(catalogCache, time.Minute))
	product.Get("/", handler.GetProducts)
	product.Get("/:productId", validate.GetById("productId"), handler.GetProductById)
	product.Post("/", validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", validate.UpdateProduct("productId"), handler.UpdateProduct)
	product.Delete("/", validate.Delete(), handler.DeleteProduct)

	class := v1.Group("/driving-class", middleware.Cache(catalogCache, time.Minute))
	class.Get("/", handler.GetDrivingClasses)
	class.Get("/:classId", validate.GetById("classId"), handler.GetDrivingClassById)
	class.Post("/", validate.CreateDrivingClass(), handler.CreateDrivingClass)
	class.Put("/:classId", validate.UpdateDrivingClass("classId"), handler.UpdateDrivingClass)
	class.Delete("/", validate.Delete(), handler.DeleteDrivingClass)

	customer := v1.Group("/customer")
	customer.Get("/", handler.GetCustomers)
	customer.Get("/:customerId", validate.GetById("customerId"), handler.GetCustomerById)

	statistic := v1.Group("/statistic")
	statistic.Get("/", handler.GetAdminStats)

	v1.Get("/notifications/ws", websocket.New(handler.NotificationSocket))
}

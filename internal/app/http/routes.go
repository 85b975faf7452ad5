package routes

import (
	"artworld-app/internal/api/aisearch"
	authapi "artworld-app/internal/api/auth"
	catalogapi "artworld-app/internal/api/catalog"
	reviewapi "artworld-app/internal/api/review"
	submissionsapi "artworld-app/internal/api/submissions"
	usersapi "artworld-app/internal/api/users"
	"artworld-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog reads
	r.GET("/artworks", catalogapi.ListArtworks)
	r.GET("/artworks/:id", catalogapi.GetArtwork)
	r.GET("/artists", catalogapi.ListArtists)
	r.GET("/artists/:id", catalogapi.GetArtist)
	r.GET("/api/latest-artworks", catalogapi.LatestArtworks)

	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	// Public JSON writes go through the input sanitizer
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/api/ai-search", aisearch.AskQuestion)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/logout", authapi.Logout)
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.PUT("/user/profile", usersapi.UpdateProfile)
	auth.POST("/user/real-name-auth", usersapi.RealNameAuth)
	auth.POST("/change-password", authapi.ChangePassword)
	auth.POST("/apply-reviewer", usersapi.ApplyReviewer)
	auth.POST("/user/feedback", usersapi.SubmitFeedback)

	auth.POST("/submit-artwork", submissionsapi.Submit)
	auth.GET("/my-submissions", submissionsapi.MySubmissions)
	auth.POST("/api/artwork/:id/withdraw", submissionsapi.Withdraw)
	auth.POST("/api/artwork/:id/delete", submissionsapi.Delete)

	// Reviewer-only; the gate re-reads the live user record
	review := auth.Group("/")
	review.Use(middleware.RequireReviewer())
	review.GET("/api/stats", reviewapi.GetStats)
	review.GET("/review/pending", reviewapi.ListPending)
	review.POST("/api/artwork/:id/approve", reviewapi.Approve)
	review.POST("/api/artwork/:id/reject", reviewapi.Reject)
	review.POST("/api/batch-approve", reviewapi.BatchApprove)
}

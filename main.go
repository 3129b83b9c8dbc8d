package main

import (
	"log"
	"os"
	"os/exec"
	"runtime"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cinematix/config"
	"cinematix/controllers"
	"cinematix/routes"
	"cinematix/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: file .env tidak ditemukan, memakai default")
	}

	// connect db
	config.ConnectDatabase()

	// rangkai services
	controllers.Setup(config.DB, "data/history")

	// init router
	r := gin.Default() // sudah ada Logger & Recovery

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// routes
	routes.RegisterRoutes(r)

	// seed data
	seeders.Seed()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Aplikasi desktop: bind ke loopback saja lalu buka browser OS.
	addr := "127.0.0.1:" + port
	openBrowser("http://" + addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}

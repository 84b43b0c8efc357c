package main

import (
	"fmt"
	"os"

	"github.com/hiringplatform/backend/cmd"
	_ "github.com/hiringplatform/backend/docs"
)

// @title Hiring Platform API
// @version 1.0
// @description Hiring platform backend with job matching, screening answer scoring and resume parsing.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

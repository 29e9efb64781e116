package main

import (
	"flag"
	"fmt"
	"os"

	"alandalus-portal/app/config"
	"alandalus-portal/app/database"
	"alandalus-portal/app/models"
)

// Creates the first admin account from the terminal.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	firstName := flag.String("first-name", "Admin", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: addadmin -email <email> -password <password> [-first-name <name>] [-last-name <name>]")
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	if err := database.AssignRole(db, user.ID, "admin"); err != nil {
		fmt.Printf("Error assigning admin role: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}

package main

import (
	"log"

	"github.com/joho/godotenv"

	"sigmagram/internal/config"
	"sigmagram/internal/database"
	"sigmagram/internal/domain"
	"sigmagram/internal/pkg/password"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Community{},
		&domain.CommunityFollower{},
		&domain.Post{},
		&domain.Like{},
		&domain.Comment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	hash1, err := password.Hash("password1")
	if err != nil {
		log.Fatal(err)
	}
	hash2, err := password.Hash("password2")
	if err != nil {
		log.Fatal(err)
	}

	user1 := domain.User{Username: "user1", PasswordHash: hash1}
	if err := db.Where(domain.User{Username: "user1"}).FirstOrCreate(&user1).Error; err != nil {
		log.Fatal(err)
	}
	user2 := domain.User{Username: "user2", PasswordHash: hash2}
	if err := db.Where(domain.User{Username: "user2"}).FirstOrCreate(&user2).Error; err != nil {
		log.Fatal(err)
	}

	tech := domain.Community{
		Category:    "Technology",
		Description: "A community for tech enthusiasts",
		CreatorID:   user1.ID,
	}
	if err := db.Where(domain.Community{Category: "Technology"}).FirstOrCreate(&tech).Error; err != nil {
		log.Fatal(err)
	}
	gaming := domain.Community{
		Category:    "Gaming",
		Description: "A community for gamers",
		CreatorID:   user2.ID,
	}
	if err := db.Where(domain.Community{Category: "Gaming"}).FirstOrCreate(&gaming).Error; err != nil {
		log.Fatal(err)
	}

	seedPosts := []domain.Post{
		{Content: "Post about JavaScript", AuthorID: user1.ID, CommunityID: tech.ID},
		{Content: "Post about Python", AuthorID: user1.ID, CommunityID: tech.ID},
		{Content: "Post about Gaming Tips", AuthorID: user2.ID, CommunityID: gaming.ID},
	}
	for i := range seedPosts {
		p := seedPosts[i]
		if err := db.Where(domain.Post{Content: p.Content, AuthorID: p.AuthorID}).
			FirstOrCreate(&seedPosts[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed completed: 2 users, 2 communities, 3 posts")
}

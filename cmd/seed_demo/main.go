// Seeds a demo user with a small GTD workspace: a project, a few
// tasks across the lists, one dependency chain and one deferred task.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)
	tasks := repository.NewTaskRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	user := &domain.User{Username: "demo", PasswordHash: string(hash)}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("create demo user: %v", err)
	}

	project := &domain.Project{ID: uuid.NewString(), UserID: user.ID, Title: "Kitchen remodel", Status: domain.ProjectActive}
	if err := projects.Create(ctx, project); err != nil {
		log.Fatalf("create project: %v", err)
	}

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	nextWeek := today.AddDate(0, 0, 7)

	measure := &domain.Task{
		ID: uuid.NewString(), UserID: user.ID,
		Title: "Measure kitchen walls", Status: domain.StatusNext,
		ProjectID: &project.ID, Contexts: []string{"home"},
		Energy: domain.EnergyLow, EstimatedMinutes: 15,
	}
	order := &domain.Task{
		ID: uuid.NewString(), UserID: user.ID,
		Title: "Order cabinets", Status: domain.StatusNext,
		ProjectID: &project.ID, WaitingFor: []string{measure.ID},
		DueDate: &nextWeek,
	}
	taxes := &domain.Task{
		ID: uuid.NewString(), UserID: user.ID,
		Title: "File taxes", Status: domain.StatusNext,
		DueDate: &yesterday, Description: "Forms are in the blue folder",
	}
	deferred := &domain.Task{
		ID: uuid.NewString(), UserID: user.ID,
		Title: "Renew passport", Status: domain.StatusWaiting,
		DeferDate: &nextWeek,
	}
	inbox := &domain.Task{
		ID: uuid.NewString(), UserID: user.ID,
		Title: "Read the woodworking book", Status: domain.StatusInbox,
	}
	weekly := &domain.Task{
		ID: uuid.NewString(), UserID: user.ID,
		Title: "Weekly review", Status: domain.StatusNext,
		DueDate: &today, Recurrence: domain.RecurrenceWeekly,
		EstimatedMinutes: 30, Energy: domain.EnergyHigh,
	}

	for _, t := range []*domain.Task{measure, order, taxes, deferred, inbox, weekly} {
		if err := tasks.Create(ctx, t); err != nil {
			log.Fatalf("create task %q: %v", t.Title, err)
		}
	}

	log.Printf("seeded demo user id=%d with %d tasks", user.ID, 6)
}

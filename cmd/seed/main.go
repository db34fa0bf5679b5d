package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/config"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/repository"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/schedule"
	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var locationID string
	var days int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random users, 2: insert locations, 3: insert random shifts for a location)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&locationID, "location-id", "", "location to generate shifts for")
	flag.IntVar(&days, "days", 7, "number of consecutive days of shifts to generate")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, so ping to fail fast on a bad DSN.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("number of users must be positive")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			user, err := seed.RandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("failed to generate user", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(ctx, user); err != nil {
				slog.Error("failed to insert user", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("inserted users", slog.Int("count", n-cnt))
	case 2:
		if n <= 0 {
			slog.Error("number of locations must be positive")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			location := seed.RandomLocation(i)
			if err := repo.CreateLocation(ctx, location); err != nil {
				slog.Error("failed to insert location", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("inserted locations", slog.Int("count", n-cnt))
	case 3:
		if locationID == "" {
			slog.Error("location-id is required")
			return
		}
		if days <= 0 {
			slog.Error("days must be positive")
			return
		}

		location, err := repo.GetLocationByID(ctx, locationID)
		if err != nil {
			slog.Error("failed to load location", slog.String("error", err.Error()))
			return
		}

		users, err := repo.GetAllUsers(ctx)
		if err != nil {
			slog.Error("failed to load users", slog.String("error", err.Error()))
			return
		}

		employeeIDs := make([]int64, 0, len(users))
		for _, user := range users {
			employeeIDs = append(employeeIDs, user.ID)
		}

		shifts := seed.RandomShifts(location.ID, time.Now(), days, employeeIDs)
		cnt := 0
		for _, shift := range shifts {
			in := schedule.CreateShiftInput{
				LocationID:  shift.LocationID,
				Date:        shift.Date,
				StartTime:   shift.StartTime,
				EndTime:     shift.EndTime,
				ShiftType:   shift.ShiftType,
				EmployeeIDs: shift.AssignedEmployeeIDs,
			}
			if _, err := repo.CreateShift(ctx, in); err != nil {
				slog.Error("failed to insert shift", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("inserted shifts", slog.String("location", location.Name), slog.Int("count", cnt))
	default:
		slog.Error("unknown operation")
	}
}

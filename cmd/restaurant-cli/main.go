package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/auth"
	"restaurant-manager/internal/calendar"
	"restaurant-manager/internal/config"
	"restaurant-manager/internal/database"
	"restaurant-manager/internal/notification"
	"restaurant-manager/internal/order"
	"restaurant-manager/internal/plan"
	"restaurant-manager/internal/profile"
	"restaurant-manager/internal/review"
	"restaurant-manager/internal/session"
)

func main() {
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client := api.NewClient(cfg)

	store, err := session.NewStore(cfg.SessionPath)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "send-otp":
		requireArgs(3, "send-otp <phone>")
		challenge, err := auth.NewService(client).SendOTP(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Failed to send OTP: %v", err)
		}
		fmt.Printf("OTP sent to %s: %s\n", challenge.Phone, challenge.Message)

	case "verify-otp":
		requireArgs(4, "verify-otp <phone> <code>")
		login, err := auth.NewService(client).VerifyOTP(ctx, os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("Failed to verify OTP: %v", err)
		}
		sess := &session.Session{Token: login.Token, Restaurant: login.Restaurant}
		if err := store.Save(sess); err != nil {
			log.Fatalf("Failed to save session: %v", err)
		}
		if login.IsProfile {
			fmt.Println("Logged in.")
		} else {
			fmt.Println("Logged in. Profile is incomplete; run 'profile' to review it.")
		}

	case "logout":
		token := mustToken(store)
		if err := auth.NewService(client).Logout(ctx, token); err != nil {
			log.Printf("Server-side logout failed: %v", err)
		}
		if err := store.Clear(); err != nil {
			log.Fatalf("Failed to clear session: %v", err)
		}
		fmt.Println("Logged out.")

	case "profile":
		token := mustToken(store)
		r, err := profile.NewService(client).Get(ctx, token)
		if err != nil {
			log.Fatalf("Failed to fetch profile: %v", err)
		}
		printProfile(r)

	case "toggle-online":
		token := mustToken(store)
		online, err := profile.NewService(client).ToggleOnline(ctx, token)
		if err != nil {
			log.Fatalf("Failed to toggle online state: %v", err)
		}
		fmt.Printf("Online: %t\n", online)

	case "dashboard":
		token := mustToken(store)
		d, err := profile.NewService(client).Dashboard(ctx, token)
		if err != nil {
			log.Fatalf("Failed to fetch dashboard: %v", err)
		}
		fmt.Printf("%s (%s) — status %s\n", d.RestaurantInfo.Name, d.RestaurantInfo.BusinessName, d.RestaurantInfo.Status)
		fmt.Printf("Orders: %d  Revenue: %.2f  Customers: %d  Rating: %.1f\n",
			d.Stats.TotalOrders, d.Stats.TotalRevenue, d.Stats.TotalCustomers, d.Stats.AverageRating)

	case "plans":
		token := mustToken(store)
		result, err := plan.NewService(client).List(ctx, token)
		if err != nil {
			log.Fatalf("Failed to list plans: %v", err)
		}
		for i := range result.Plans {
			p := &result.Plans[i]
			id, _ := p.ResolveID()
			fmt.Printf("%s  %-24s %8.2f/week  available=%t\n", id, p.Name, p.PricePerWeek, p.IsAvailable)
		}

	case "plan-menu":
		requireArgs(3, "plan-menu <plan-id>")
		token := mustToken(store)
		p, err := plan.NewService(client).Get(ctx, os.Args[2], token)
		if err != nil {
			log.Fatalf("Failed to fetch plan: %v", err)
		}
		printMealMatrix(calendar.DeriveMatrix(p.WeeklyMeals))

	case "plan-slot":
		slotCmd := flag.NewFlagSet("plan-slot", flag.ExitOnError)
		start := slotCmd.String("start", "", "Slot start date (YYYY-MM-DD)")
		end := slotCmd.String("end", "", "Slot end date (YYYY-MM-DD)")
		meals := slotCmd.String("meals", "", "Comma-separated dates that have meals")
		slotCmd.Parse(os.Args[2:])
		if *start == "" || *end == "" {
			log.Fatal("plan-slot requires -start and -end")
		}
		slot := calendar.Slot{StartDate: *start, EndDate: *end}
		if *meals != "" {
			slot.MealDates = strings.Split(*meals, ",")
		}
		cells, err := calendar.DeriveCells(slot)
		if err != nil {
			log.Fatalf("Failed to derive slot calendar: %v", err)
		}
		for _, c := range cells {
			marker := " "
			if c.HasMeal {
				marker = "*"
			}
			fmt.Printf("%s %s %2d %s\n", marker, c.WeekdayInitial, c.DayNumber, c.Date)
		}

	case "set-meal":
		// set-meal <plan-id> <day> <meal-type> name:calories [name:calories ...]
		if len(os.Args) < 6 {
			log.Fatal("Usage: set-meal <plan-id> <day> <meal-type> name:calories [...]")
		}
		token := mustToken(store)
		meals, err := parseMeals(os.Args[5:])
		if err != nil {
			log.Fatalf("Invalid meal argument: %v", err)
		}
		if err := plan.NewService(client).UpdateMeal(ctx, os.Args[2], os.Args[3], os.Args[4], meals, token); err != nil {
			log.Fatalf("Failed to update meal: %v", err)
		}
		fmt.Println("Meal updated.")

	case "orders":
		ordersCmd := flag.NewFlagSet("orders", flag.ExitOnError)
		status := ordersCmd.String("status", "", "Filter by order status")
		page := ordersCmd.Int("page", 1, "Page number")
		ordersCmd.Parse(os.Args[2:])
		token := mustToken(store)
		result, err := order.NewService(client).List(ctx, order.ListOptions{
			Status: order.Status(*status),
			Page:   *page,
		}, token)
		if err != nil {
			log.Fatalf("Failed to list orders: %v", err)
		}
		for i := range result.Orders {
			o := &result.Orders[i]
			id, _ := o.ResolveID()
			fmt.Printf("%s  %-12s %-10s %8.2f\n", id, o.OrderNumber, o.Status, o.TotalAmount)
		}
		fmt.Printf("Page %d of %d (%d orders)\n",
			result.Pagination.CurrentPage, result.Pagination.TotalPages, result.Pagination.TotalOrders)

	case "order-status":
		requireArgs(4, "order-status <order-id> <status>")
		token := mustToken(store)
		if err := order.NewService(client).UpdateStatus(ctx, os.Args[2], order.Status(os.Args[3]), token); err != nil {
			log.Fatalf("Failed to update order status: %v", err)
		}
		fmt.Println("Order status updated.")

	case "reviews":
		token := mustToken(store)
		result, err := review.NewService(client).List(ctx, review.ListOptions{}, token)
		if err != nil {
			log.Fatalf("Failed to list reviews: %v", err)
		}
		for i := range result.Reviews {
			r := &result.Reviews[i]
			fmt.Printf("%d/5  %s %s: %s\n", r.Rating, r.Customer.FirstName, r.Customer.LastName, r.Comment)
		}

	case "notifications":
		notifCmd := flag.NewFlagSet("notifications", flag.ExitOnError)
		unread := notifCmd.Bool("unread", false, "Show only unread notifications")
		markRead := notifCmd.Bool("mark-read", false, "Mark everything read afterwards")
		notifCmd.Parse(os.Args[2:])

		db, err := database.NewDB(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		repo := notification.NewRepository(db.SQL)
		list, err := repo.List(ctx, notification.Filter{UnreadOnly: *unread})
		if err != nil {
			log.Fatalf("Failed to list notifications: %v", err)
		}
		for _, n := range list {
			state := " "
			if !n.IsRead {
				state = "*"
			}
			fmt.Printf("%s [%s] %s — %s\n", state, n.CreatedAt.Format("2006-01-02 15:04"), n.Title, n.Message)
		}
		if *markRead {
			if err := repo.MarkAllRead(ctx); err != nil {
				log.Fatalf("Failed to mark notifications read: %v", err)
			}
		}

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// mustToken loads the stored session and exits if there is none.
func mustToken(store *session.Store) string {
	if !store.Exists() {
		log.Fatal("Not logged in. Run 'send-otp' and 'verify-otp' first.")
	}
	sess, err := store.Load()
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}
	if sess.Expired() {
		log.Fatal("Session expired. Run 'send-otp' and 'verify-otp' again.")
	}
	return sess.Token
}

func requireArgs(n int, usage string) {
	if len(os.Args) < n {
		log.Fatalf("Usage: restaurant-cli %s", usage)
	}
}

// parseMeals converts name:calories arguments into meal entries.
func parseMeals(args []string) ([]plan.Meal, error) {
	meals := make([]plan.Meal, 0, len(args))
	for _, arg := range args {
		name, caloriesStr, found := strings.Cut(arg, ":")
		if !found || name == "" {
			return nil, fmt.Errorf("expected name:calories, got %q", arg)
		}
		calories, err := strconv.Atoi(caloriesStr)
		if err != nil {
			return nil, fmt.Errorf("invalid calories in %q: %w", arg, err)
		}
		meals = append(meals, plan.Meal{Name: name, Calories: calories})
	}
	return meals, nil
}

func printProfile(r *profile.Restaurant) {
	fmt.Printf("%s %s — %s\n", r.FirstName, r.LastName, r.BusinessName)
	fmt.Printf("Phone: %s  Email: %s\n", r.Phone, r.Email)
	fmt.Printf("Address: %s, %s %s, %s\n", r.Address, r.City, r.PinCode, r.State)
	fmt.Printf("Category: %s  Status: %s  Online: %t\n", r.Category, r.Status, r.IsOnline)
}

func printMealMatrix(matrix calendar.Matrix) {
	for _, row := range matrix {
		for _, cell := range row {
			names := make([]string, len(cell.Meals))
			for i, m := range cell.Meals {
				names[i] = fmt.Sprintf("%s (%d kcal)", m.Name, m.Calories)
			}
			fmt.Printf("%-10s %-10s %s\n", cell.Day, cell.MealType, strings.Join(names, ", "))
		}
	}
}

func printUsage() {
	fmt.Println("Usage: restaurant-cli <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  send-otp <phone>                 Request a one-time login code")
	fmt.Println("  verify-otp <phone> <code>        Exchange the code for a session")
	fmt.Println("  logout                           End the session")
	fmt.Println("  profile                          Show the restaurant profile")
	fmt.Println("  toggle-online                    Flip the online/offline state")
	fmt.Println("  dashboard                        Show the aggregate overview")
	fmt.Println("  plans                            List subscription plans")
	fmt.Println("  plan-menu <plan-id>              Print a plan's weekly meal grid")
	fmt.Println("  plan-slot -start -end [-meals]   Print a slot's date strip")
	fmt.Println("  set-meal <plan-id> <day> <type> name:calories ...")
	fmt.Println("  orders [-status] [-page]         List orders")
	fmt.Println("  order-status <order-id> <status> Move an order through its lifecycle")
	fmt.Println("  reviews                          List customer reviews")
	fmt.Println("  notifications [-unread] [-mark-read]")
}

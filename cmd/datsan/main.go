package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/api"
	"github.com/datsan-vn/datsan-go/internal/booking"
	"github.com/datsan-vn/datsan-go/internal/config"
	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
	"github.com/datsan-vn/datsan-go/internal/listing"
	"github.com/datsan-vn/datsan-go/internal/logger"
	"github.com/datsan-vn/datsan-go/internal/slots"
	"github.com/datsan-vn/datsan-go/internal/store"
	"github.com/datsan-vn/datsan-go/internal/telemetry"
	"github.com/datsan-vn/datsan-go/internal/viewmodel"
)

const usage = `datsan - badminton court booking client

Usage:
  datsan login -email <email> -password <password>
  datsan logout
  datsan courts [-q <text>] [-city <city>] [-district <district>] [-min <price>] [-max <price>] [-sort asc|desc] [-page <n>]
  datsan slots -location <id> [-date YYYY-MM-DD]
  datsan book -location <id> -court <id> -date YYYY-MM-DD -hours 5,6,7 -name <name> -phone <phone> [-pay CASH|VNPAY]
  datsan bookings
  datsan cancel -id <booking-id>
  datsan inbox [-read <id>] [-read-all]
  datsan reviews -location <id>
`

type app struct {
	cfg      *config.Config
	log      *logger.Logger
	sessions *store.SessionManager
	client   *api.Client
	mapper   *viewmodel.Mapper

	auth          *api.AuthService
	locations     *api.LocationService
	courts        *api.CourtService
	bookings      *api.BookingService
	reviews       *api.ReviewService
	notifications *api.NotificationService
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		log.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	sessionStore, err := newSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open session store", zap.Error(err))
	}
	sessions := store.NewSessionManager(sessionStore, log)
	if err := sessions.Bootstrap(ctx); err != nil {
		log.Warn("session bootstrap failed", zap.Error(err))
	}
	sessions.OnLogout(func() {
		fmt.Println("Phiên đăng nhập đã kết thúc. Vui lòng đăng nhập lại.")
	})

	client := api.NewClient(api.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		Tokens:         sessions,
		OnUnauthorized: sessions.ForceLogout,
		Logger:         log,
	})

	a := &app{
		cfg:           cfg,
		log:           log,
		sessions:      sessions,
		client:        client,
		mapper:        viewmodel.NewMapper(cfg.API.BaseURL),
		auth:          api.NewAuthService(client),
		locations:     api.NewLocationService(client),
		courts:        api.NewCourtService(client),
		bookings:      api.NewBookingService(client),
		reviews:       api.NewReviewService(client),
		notifications: api.NewNotificationService(client),
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if apiErr, ok := api.AsError(err); ok {
			fmt.Fprintln(os.Stderr, apiErr.UserMessage())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config) (store.SessionStore, error) {
	switch cfg.Session.Backend {
	case "redis":
		return store.NewRedisStore(ctx, &store.RedisConfig{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path := cfg.Session.Path
		if !strings.HasPrefix(path, "/") {
			path = home + "/" + path
		}
		return store.NewFileStore(path), nil
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.sessions.Logout(ctx)
	case "courts":
		return a.cmdCourts(ctx, args)
	case "slots":
		return a.cmdSlots(ctx, args)
	case "book":
		return a.cmdBook(ctx, args)
	case "bookings":
		return a.cmdBookings(ctx)
	case "cancel":
		return a.cmdCancel(ctx, args)
	case "inbox":
		return a.cmdInbox(ctx, args)
	case "reviews":
		return a.cmdReviews(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	resp, err := a.auth.Login(ctx, &dto.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	session := &domain.AuthSession{
		UserID:    resp.User.ID,
		Role:      resp.User.Role,
		Token:     resp.Token,
		CreatedAt: time.Now(),
	}
	if err := a.sessions.Login(ctx, session); err != nil {
		return err
	}
	fmt.Printf("Xin chào %s!\n", resp.User.FullName)
	return nil
}

func (a *app) cmdCourts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("courts", flag.ExitOnError)
	query := fs.String("q", "", "free-text search on name or address")
	city := fs.String("city", "", "city filter")
	district := fs.String("district", "", "district filter")
	minPrice := fs.Int64("min", 0, "minimum price per hour")
	maxPrice := fs.Int64("max", 0, "maximum price per hour")
	sortOrder := fs.String("sort", "", "price sort: asc or desc")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	locations, err := a.locations.List(ctx)
	if err != nil {
		return err
	}

	filter := &listing.Filter{
		Query:    *query,
		City:     *city,
		District: *district,
		MinPrice: *minPrice,
		MaxPrice: *maxPrice,
	}
	switch *sortOrder {
	case "asc":
		filter.Sort = listing.SortPriceAsc
	case "desc":
		filter.Sort = listing.SortPriceDesc
	}

	pager := listing.NewPager(filter.Apply(locations))
	pager.SetPage(*page)

	for _, vm := range a.mapper.Locations(pager.Items()) {
		status := ""
		if !vm.Bookable {
			status = " [bảo trì]"
		}
		fmt.Printf("%s  %-30s %s/giờ  ★%.1f  %s%s\n",
			vm.ID, vm.Name, vm.PriceLabel, vm.Rating, vm.Address, status)
	}
	fmt.Printf("Trang %d/%d (%d sân)\n", pager.Page(), pager.TotalPages(), pager.Total())
	return nil
}

func (a *app) cmdSlots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ExitOnError)
	locationID := fs.String("location", "", "location id")
	date := fs.String("date", time.Now().Format("2006-01-02"), "date (YYYY-MM-DD)")
	fs.Parse(args)

	if *locationID == "" {
		return fmt.Errorf("missing -location")
	}

	location, err := a.locations.Get(ctx, *locationID)
	if err != nil {
		return err
	}

	flow := booking.NewFlow(a.courts, a.bookings, location, a.log)
	if err := flow.Open(ctx, *date); err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", location.Name, *date)
	for _, court := range flow.Courts() {
		available := flow.Availability(court.ID)
		var open []string
		for _, h := range slots.Hours() {
			if available.Contains(h) {
				open = append(open, fmt.Sprintf("%dh", h))
			}
		}
		if len(open) == 0 {
			fmt.Printf("  %-12s hết chỗ\n", court.Name)
			continue
		}
		fmt.Printf("  %-12s %s\n", court.Name, strings.Join(open, " "))
	}
	return nil
}

func (a *app) cmdBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	locationID := fs.String("location", "", "location id")
	courtID := fs.String("court", "", "court id")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	hoursArg := fs.String("hours", "", "comma-separated hours, e.g. 18,19,20")
	name := fs.String("name", "", "contact name")
	phone := fs.String("phone", "", "contact phone")
	pay := fs.String("pay", "CASH", "payment method: CASH or VNPAY")
	fs.Parse(args)

	if !a.sessions.LoggedIn() {
		return domain.ErrNoSession
	}
	if *locationID == "" || *courtID == "" || *date == "" || *hoursArg == "" {
		return fmt.Errorf("missing -location, -court, -date or -hours")
	}

	location, err := a.locations.Get(ctx, *locationID)
	if err != nil {
		return err
	}

	flow := booking.NewFlow(a.courts, a.bookings, location, a.log)
	if err := flow.Open(ctx, *date); err != nil {
		return err
	}
	flow.SelectCourt(*courtID)

	hours, err := parseHours(*hoursArg)
	if err != nil {
		return err
	}
	for _, hour := range hours {
		if err := flow.Selection().Toggle(hour); err != nil {
			return fmt.Errorf("hour %d: %w", hour, err)
		}
	}

	method := domain.PaymentMethod(strings.ToUpper(*pay))
	sel := flow.Selection()
	fmt.Printf("Khung giờ: %s\n", sel.Summary())
	fmt.Printf("Tổng tiền: %s\n", viewmodel.FormatPrice(sel.TotalPrice()))
	if method == domain.PaymentMethodCash {
		fmt.Printf("Đặt cọc (50%%): %s\n", viewmodel.FormatPrice(sel.Deposit(method)))
	}

	booked, err := flow.Submit(ctx, *name, *phone, method)
	if err != nil {
		return err
	}
	fmt.Printf("Đặt sân thành công! Mã đặt sân: %s\n", booked.ID)
	return nil
}

// parseHours parses a comma-separated hour list like "18,19,20".
// Each element must be a whole number on its own; "5abc" is rejected.
func parseHours(arg string) ([]int, error) {
	var hours []int
	for _, part := range strings.Split(arg, ",") {
		hour, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid hour: %q", part)
		}
		hours = append(hours, hour)
	}
	return hours, nil
}

func (a *app) cmdBookings(ctx context.Context) error {
	if !a.sessions.LoggedIn() {
		return domain.ErrNoSession
	}
	items, err := a.bookings.ListMine(ctx)
	if err != nil {
		return err
	}
	for _, b := range items {
		fmt.Printf("%s  %s  %s  %v  %s  %s\n",
			b.ID, b.Date, b.CourtID, b.Hours, viewmodel.FormatPrice(b.TotalPrice), b.Status)
	}
	return nil
}

func (a *app) cmdCancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "booking id")
	fs.Parse(args)

	if !a.sessions.LoggedIn() {
		return domain.ErrNoSession
	}
	if *id == "" {
		return fmt.Errorf("missing -id")
	}
	if err := a.bookings.Cancel(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Đã hủy đặt sân.")
	return nil
}

func (a *app) cmdInbox(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("inbox", flag.ExitOnError)
	readID := fs.String("read", "", "mark one notification read")
	readAll := fs.Bool("read-all", false, "mark everything read")
	fs.Parse(args)

	if !a.sessions.LoggedIn() {
		return domain.ErrNoSession
	}

	items, err := a.notifications.List(ctx)
	if err != nil {
		return err
	}

	inbox := store.NewInbox(a.notifications, a.log)
	inbox.Set(items)

	if *readID != "" {
		inbox.MarkRead(*readID)
	}
	if *readAll {
		inbox.MarkAllRead()
	}
	// One-shot process: join the confirmation calls before exit, or
	// they die with the process and the backend never hears about them.
	inbox.Wait()

	for _, n := range inbox.Items() {
		vm := a.mapper.Notification(&n)
		marker := " "
		if !vm.IsRead {
			marker = "*"
		}
		fmt.Printf("%s %s  [%s] %s - %s (%s)\n", marker, vm.ID, vm.Type, vm.Title, vm.Message, vm.Posted)
	}
	fmt.Printf("%d chưa đọc\n", inbox.UnreadCount())
	return nil
}

func (a *app) cmdReviews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ExitOnError)
	locationID := fs.String("location", "", "location id")
	fs.Parse(args)

	if *locationID == "" {
		return fmt.Errorf("missing -location")
	}

	items, err := a.reviews.ListByLocation(ctx, *locationID)
	if err != nil {
		return err
	}
	for _, r := range items {
		vm := a.mapper.Review(&r)
		fmt.Printf("★%d %s - %s (%s, %d thích)\n", vm.Rating, vm.Author, vm.Comment, vm.Posted, vm.Likes)
		for _, rep := range vm.Replies {
			fmt.Printf("    ↳ %s: %s\n", rep.Author, rep.Comment)
		}
	}
	return nil
}

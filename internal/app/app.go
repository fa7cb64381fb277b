package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/IT-Nick/heritage/internal/app/handlers/http/create_session_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/http/quiz_report_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/http/session_action_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/http/session_state_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/http/submit_answer_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/ar_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/quiz_answer_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/quiz_next_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/quiz_pdf_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/quiz_restart_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/quiz_start_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/site_handler"
	"github.com/IT-Nick/heritage/internal/app/handlers/telegram/start_handler"
	contentService "github.com/IT-Nick/heritage/internal/domain/content/service"
	"github.com/IT-Nick/heritage/internal/domain/model"
	quizService "github.com/IT-Nick/heritage/internal/domain/quiz/service"
	"github.com/IT-Nick/heritage/internal/domain/sessions"
	"github.com/IT-Nick/heritage/internal/infra/config"
	"github.com/IT-Nick/heritage/internal/infra/timer"
	"github.com/IT-Nick/heritage/middleware"
	"github.com/IT-Nick/heritage/poller"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/telebot.v4"
	tmiddleware "gopkg.in/telebot.v4/middleware"

	httpProfile "github.com/IT-Nick/heritage/internal/app/handlers/http/profile_handler"
	httpSiteQR "github.com/IT-Nick/heritage/internal/app/handlers/http/site_qr_handler"
	httpSites "github.com/IT-Nick/heritage/internal/app/handlers/http/sites_handler"
	tgProfile "github.com/IT-Nick/heritage/internal/app/handlers/telegram/profile_handler"
	tgSiteQR "github.com/IT-Nick/heritage/internal/app/handlers/telegram/site_qr_handler"
	tgSites "github.com/IT-Nick/heritage/internal/app/handlers/telegram/sites_handler"
)

const shutdownTimeout = 10 * time.Second

type LocalStatesHelpers struct {
	sessions *sessions.Store
	arStates *sessions.ARStates
}

type Services struct {
	contentService *contentService.ContentService
	quizService    *quizService.QuizService
}

type App struct {
	config *config.Config
	bot    *telebot.Bot
	db     *pgxpool.Pool
	server *http.Server

	Services
	states LocalStatesHelpers
}

func NewApp(ctx context.Context, configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	repo, db, err := InitContent(ctx, configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize content: %w", err)
	}

	app := newApp(configImpl, repo)
	app.db = db

	return app, nil
}

func newApp(cfg *config.Config, repo contentService.Repository) *App {
	app := &App{
		config: cfg,
		states: LocalStatesHelpers{
			sessions: sessions.NewStore(cfg.Sessions.TTL),
			arStates: sessions.NewARStates(),
		},
	}
	app.initServices(repo)
	return app
}

// Функция для инициализации сервисов
func (app *App) initServices(repo contentService.Repository) {
	app.contentService = contentService.NewContentService(repo)
	app.quizService = quizService.NewQuizService(app.contentService, app.states.sessions)
}

// ListenAndServeTelegram запускает Telegram бота
func (app *App) ListenAndServeTelegram() error {
	p, err := poller.NewPoller(app.config)
	if err != nil {
		return fmt.Errorf("poller.NewPoller: %w", err)
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: p,
		OnError: func(err error, c telebot.Context) {
			if c != nil && c.Sender() != nil {
				log.Printf("Handler error for user %d: %v", c.Sender().ID, err)
				return
			}
			log.Printf("Bot error: %v", err)
		},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bootstrapMiddlewaresTelegram()
	app.bootstrapHandlersTelegram()

	log.Printf("Starting bot in %s mode...", app.config.TelegramBot.Mode)
	go app.bot.Start()

	return nil
}

// bootstrapMiddlewaresTelegram в режиме отладки добавляет логгер и отладочные сообщения
func (app *App) bootstrapMiddlewaresTelegram() {
	if app.config.Debug {
		customLogger := log.New(os.Stdout, "[bot] ", log.LstdFlags)
		app.bot.Use(middleware.Logger(customLogger))
		app.bot.Use(middleware.DebugUserActions(true, app.quizDebugState))
	}
	app.bot.Use(
		tmiddleware.AutoRespond(),
		middleware.Recover(),
	)
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	arOpen := ar_handler.NewARHandler(app.contentService, app.states.arStates, ar_handler.ActionOpen)
	start := start_handler.NewStartHandler(app.contentService, arOpen).GetHandlerFunc()
	sites := tgSites.NewSitesHandler(app.contentService).GetHandlerFunc()
	quizStart := quiz_start_handler.NewQuizStartHandler(app.quizService, app.contentService).GetHandlerFunc()
	profile := tgProfile.NewProfileHandler(app.contentService).GetHandlerFunc()

	// Команды
	app.bot.Handle("/start", start)
	app.bot.Handle("/sites", sites)
	app.bot.Handle("/ar", arOpen.GetHandlerFunc())
	app.bot.Handle("/quiz", quizStart)
	app.bot.Handle("/profile", profile)

	// Главное меню и каталог
	app.bot.Handle(&telebot.InlineButton{Unique: model.HomeKey}, start)
	app.bot.Handle(&telebot.InlineButton{Unique: model.SitesKey}, sites)
	app.bot.Handle(&telebot.InlineButton{Unique: model.SiteKey}, site_handler.NewSiteHandler(app.contentService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.SiteQRKey}, tgSiteQR.NewSiteQRHandler(app.contentService, app.config.Links.BotUsername).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.ProfileKey}, profile)

	// AR-экран: только состояние переключателей, без камеры и звука
	app.bot.Handle(&telebot.InlineButton{Unique: model.ARViewKey}, arOpen.GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.ARToggleKey}, ar_handler.NewARHandler(app.contentService, app.states.arStates, ar_handler.ActionToggle).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.ARAudioKey}, ar_handler.NewARHandler(app.contentService, app.states.arStates, ar_handler.ActionAudio).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.ARInfoKey}, ar_handler.NewARHandler(app.contentService, app.states.arStates, ar_handler.ActionInfo).GetHandlerFunc())

	// Викторина
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuizStartKey}, quizStart)
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuizAnswerKey}, quiz_answer_handler.NewQuizAnswerHandler(app.quizService, app.contentService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuizNextKey}, quiz_next_handler.NewQuizNextHandler(app.quizService, app.contentService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuizRestartKey}, quiz_restart_handler.NewQuizRestartHandler(app.quizService, app.contentService).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuizPDFKey}, quiz_pdf_handler.NewQuizPDFHandler(app.quizService, app.contentService).GetHandlerFunc())
}

// quizDebugState краткое состояние викторины пользователя для DebugUserActions
func (app *App) quizDebugState(userID int64) string {
	state, err := app.quizService.State(sessions.TelegramKey(userID))
	if err != nil {
		return "no session"
	}
	if state.Completed {
		return fmt.Sprintf("completed, score %d/%d", state.Score, state.Total)
	}
	return fmt.Sprintf("question %d/%d, score %d/%d, locked %t",
		state.Index+1, state.Total, state.Score, state.Answered, state.Locked)
}

// Router маршруты HTTP API
func (app *App) Router() http.Handler {
	title := app.contentService.MessageOr(context.Background(), model.QuizTitleMessageKey, "Heritage Quiz")
	botUsername := app.config.Links.BotUsername

	r := mux.NewRouter()
	r.Use(middleware.RecoverHTTP, middleware.AccessLog())

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	r.Handle("/quiz/sessions", create_session_handler.NewCreateSessionHandler(app.quizService)).Methods(http.MethodPost)
	r.Handle("/quiz/sessions/{id}", session_state_handler.NewSessionStateHandler(app.quizService)).Methods(http.MethodGet)
	r.Handle("/quiz/sessions/{id}/answers", submit_answer_handler.NewSubmitAnswerHandler(app.quizService)).Methods(http.MethodPost)
	r.Handle("/quiz/sessions/{id}/advance", session_action_handler.NewSessionActionHandler(app.quizService, session_action_handler.ActionAdvance)).Methods(http.MethodPost)
	r.Handle("/quiz/sessions/{id}/reset", session_action_handler.NewSessionActionHandler(app.quizService, session_action_handler.ActionReset)).Methods(http.MethodPost)
	r.Handle("/quiz/sessions/{id}/report", quiz_report_handler.NewQuizReportHandler(app.quizService, title, quiz_report_handler.FormatJSON)).Methods(http.MethodGet)
	r.Handle("/quiz/sessions/{id}/report.pdf", quiz_report_handler.NewQuizReportHandler(app.quizService, title, quiz_report_handler.FormatPDF)).Methods(http.MethodGet)

	sites := httpSites.NewSitesHandler(app.contentService, botUsername)
	r.Handle("/sites", sites).Methods(http.MethodGet)
	r.Handle("/sites/{id}", sites).Methods(http.MethodGet)
	r.Handle("/sites/{id}/qr.png", httpSiteQR.NewSiteQRHandler(app.contentService, botUsername)).Methods(http.MethodGet)
	r.Handle("/profile", httpProfile.NewProfileHandler(app.contentService)).Methods(http.MethodGet)

	return r
}

// newHTTPServer HTTP сервер с маршрутами API
func (app *App) newHTTPServer() *http.Server {
	return &http.Server{
		Addr:              app.config.HTTPAddr(),
		Handler:           app.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// ListenAndServeHTTP запускает HTTP сервер и блокируется до его остановки
func (app *App) ListenAndServeHTTP() error {
	log.Printf("HTTP API listening on %s", app.server.Addr)
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe запускает бота (если задан токен), HTTP API и вычистку сессий.
// Блокируется до отмены ctx или падения HTTP сервера, затем останавливает все компоненты.
func (app *App) ListenAndServe(ctx context.Context) error {
	if app.config.BotEnabled() {
		if err := app.ListenAndServeTelegram(); err != nil {
			return fmt.Errorf("failed to start Telegram bot: %w", err)
		}
	} else {
		log.Println("TELEGRAM_BOT_TOKEN is not set, running HTTP API only")
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go timer.NewJanitor(app.states.sessions, app.config.Sessions.SweepInterval).Run(janitorCtx)

	app.server = app.newHTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.ListenAndServeHTTP()
	}()

	var err error
	select {
	case <-ctx.Done():
		log.Println("Shutting down...")
	case err = <-serverErr:
		if err != nil {
			err = fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}

	app.Shutdown()
	return err
}

// Shutdown останавливает HTTP сервер, бота и закрывает пул БД
func (app *App) Shutdown() {
	if app.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.server.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}
	}
	if app.bot != nil {
		app.bot.Stop()
	}
	if app.db != nil {
		app.db.Close()
	}
}

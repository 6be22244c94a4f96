package client

import (
	"context"
	"fmt"
	"io"
	gosync "sync"

	"golang.org/x/exp/slog"

	"invtrack/internal/app/client/config"
	"invtrack/internal/app/client/label"
	"invtrack/internal/app/client/view"
	"invtrack/internal/domain/inventory"
)

// NavPage - раздел интерфейса вне режима карточки
type NavPage string

const (
	PageDashboard  NavPage = "dashboard"
	PageReferences NavPage = "references"
)

// App владеет всем изменяемым состоянием клиента: снимком, фильтрами,
// курсором, выбором, сессией и навигацией. Состояние меняется только через
// методы App, наружу отдаются производные проекции.
type App struct {
	config  *config.Config
	log     *slog.Logger
	backend Backend
	storage Storage
	session *Session
	store   *DataStore
	crud    *Coordinator

	mu        gosync.RWMutex
	view      *view.State
	selection *Selection
	resolver  *DeepLinkResolver
	card      *inventory.Device
	page      NavPage

	wg gosync.WaitGroup
}

// Projection - снимок того, что должен показать интерфейс
type Projection struct {
	Loaded bool

	CardMode bool
	Card     *inventory.Device

	LoginRequired bool
	Authenticated bool
	Mode          Mode
	Nav           NavPage

	ShowNav        bool
	ShowFilters    bool
	ShowModeSwitch bool
	AdminControls  bool

	Filter   view.Filter
	Page     view.Page
	Stats    view.Stats
	Selected []int
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	var storage Storage
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqliteStorage
	}

	return NewWithBackend(cfg, log, httpCl, storage), nil
}

// NewWithBackend собирает приложение поверх готового транспорта и хранилища
func NewWithBackend(cfg *config.Config, log *slog.Logger, backend Backend, storage Storage) *App {
	store := NewDataStore(backend, log)

	app := &App{
		config:    cfg,
		log:       log,
		backend:   backend,
		storage:   storage,
		session:   NewSession(backend, storage, cfg.AdminSecret, log),
		store:     store,
		crud:      NewCoordinator(backend, store, log),
		view:      view.NewState(cfg.PageSize),
		selection: NewSelection(),
		resolver:  NewDeepLinkResolver(Navigation{}, log),
		page:      PageDashboard,
	}

	store.Subscribe(app.onSnapshot)

	return app
}

// Load начинает новую загрузку: запоминает навигацию и всегда загружает
// отчет, даже без входа, чтобы работали QR ссылки. Ошибка загрузки имеет
// тип *FetchError и не очищает данные.
func (a *App) Load(ctx context.Context, navigation string) error {
	nav, err := ParseNavigation(navigation)
	if err != nil {
		a.log.Warn("Ссылка не распознана", "error", err)
	}

	a.mu.Lock()
	a.resolver = NewDeepLinkResolver(nav, a.log)
	a.card = nil
	a.mu.Unlock()

	_, err = a.store.Fetch(ctx)
	if err != nil {
		return err
	}

	// снимок мог быть загружен раньше и не вызвать обработчик
	a.onSnapshot(a.store.Snapshot())
	return nil
}

// Refresh перезагружает отчет
func (a *App) Refresh(ctx context.Context) error {
	_, err := a.store.Fetch(ctx)
	return err
}

// RefreshAsync загружает отчет в фоне, результат приходит в канал
func (a *App) RefreshAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		done <- a.Refresh(ctx)
		close(done)
	}()

	return done
}

func (a *App) onSnapshot(snap inventory.Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if d, ok := a.resolver.Resolve(snap.Devices); ok {
		a.card = &d
		return
	}

	if a.card != nil {
		if d, ok := snap.Device(a.card.ID); ok {
			a.card = &d
		}
	}
}

// View строит проекцию для текущего состояния
func (a *App) View() Projection {
	snap := a.store.Snapshot()
	authenticated := a.session.IsAuthenticated()
	mode := a.session.Mode()

	a.mu.RLock()
	defer a.mu.RUnlock()

	p := Projection{
		Loaded:        a.store.Loaded(),
		Authenticated: authenticated,
		Mode:          mode,
		Nav:           a.page,
		Filter:        a.view.Filter(),
		Selected:      a.selection.IDs(),
	}

	if a.card != nil {
		card := *a.card
		p.CardMode = true
		p.Card = &card
		return p
	}

	p.LoginRequired = !authenticated
	if !authenticated {
		return p
	}

	p.ShowNav = true
	p.ShowFilters = true
	p.ShowModeSwitch = true
	p.AdminControls = mode == ModeAdmin
	p.Page = a.view.Apply(snap.Devices)
	p.Stats = view.NewStats(snap)

	return p
}

// CloseCard возвращает обычный вид. Повторного разбора ссылки в этой
// загрузке не будет.
func (a *App) CloseCard() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.card = nil
}

func (a *App) Snapshot() inventory.Snapshot {
	return a.store.Snapshot()
}

func (a *App) Device(id int) (inventory.Device, bool) {
	return a.store.Snapshot().Device(id)
}

// Employees ищет сотрудников по ФИО
func (a *App) Employees(search string) []inventory.Employee {
	return view.FilterEmployees(a.store.Snapshot().Employees, search)
}

func (a *App) Stats() view.Stats {
	return view.NewStats(a.store.Snapshot())
}

// ==================== Filters ====================

func (a *App) SetSearch(search string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetSearch(search)
}

func (a *App) SetRoomFilter(roomID *int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetRoom(roomID)
}

func (a *App) SetCategoryFilter(category string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetCategory(category)
}

func (a *App) SetStatusFilter(status inventory.Status) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetStatus(status)
}

func (a *App) SetFilter(f view.Filter) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetFilter(f)
}

func (a *App) ResetFilters() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.ResetFilters()
}

func (a *App) SetPage(page int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetPage(page)
}

func (a *App) SetPageSize(size int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetPageSize(size)
}

func (a *App) SetCursor(c view.Cursor) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view.SetCursor(c)
}

// ==================== Selection ====================

func (a *App) Select(ids ...int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selection.Add(ids...)
}

func (a *App) Deselect(ids ...int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selection.Remove(ids...)
}

func (a *App) ToggleSelection(id int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selection.Toggle(id)
}

func (a *App) ClearSelection() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selection.Clear()
}

func (a *App) Selection() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.selection.IDs()
}

// ==================== Session ====================

func (a *App) SessionState() State {
	return a.session.State()
}

func (a *App) IsAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func (a *App) IsAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) Login(ctx context.Context, username, password string) error {
	return a.session.Login(ctx, username, password)
}

// Logout сбрасывает вход, режим администратора и навигацию, открытая
// карточка закрывается
func (a *App) Logout() error {
	err := a.session.Logout()

	a.mu.Lock()
	a.page = PageDashboard
	a.card = nil
	a.mu.Unlock()

	if err != nil {
		return fmt.Errorf("ошибка удаления флага входа: %w", err)
	}
	return nil
}

func (a *App) Elevate(secret string) error {
	return a.session.Elevate(secret)
}

// Demote выключает режим администратора и уводит со справочников
func (a *App) Demote() {
	a.session.Demote()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.page == PageReferences {
		a.page = PageDashboard
	}
}

// Navigate переключает раздел. Справочники доступны только администратору.
func (a *App) Navigate(page NavPage) error {
	if !a.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if page == PageReferences && !a.session.IsAdmin() {
		return ErrAdminRequired
	}
	if page != PageDashboard && page != PageReferences {
		return fmt.Errorf("неизвестный раздел: %s", page)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.page = page
	return nil
}

func (a *App) requireAdmin() error {
	if !a.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	if !a.session.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// ==================== Mutations ====================

func (a *App) SaveDevice(ctx context.Context, in inventory.DeviceInput, existing *inventory.Device) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.SaveDevice(ctx, in, existing)
}

func (a *App) DeleteDevice(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.DeleteDevice(ctx, id)
}

func (a *App) SaveRoom(ctx context.Context, in inventory.RoomInput, existing *inventory.Room) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.SaveRoom(ctx, in, existing)
}

func (a *App) DeleteRoom(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.DeleteRoom(ctx, id)
}

func (a *App) SaveCategory(ctx context.Context, in inventory.CategoryInput, existing *inventory.Category) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.SaveCategory(ctx, in, existing)
}

func (a *App) DeleteCategory(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.DeleteCategory(ctx, id)
}

func (a *App) SaveEmployee(ctx context.Context, in inventory.EmployeeInput, existing *inventory.Employee) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.SaveEmployee(ctx, in, existing)
}

func (a *App) DeleteEmployee(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	return a.crud.DeleteEmployee(ctx, id)
}

// ==================== Transfer ====================

// PrintQRLabels запрашивает PDF с этикетками выбранных устройств. Выбор
// очищается только после успешного ответа.
func (a *App) PrintQRLabels(ctx context.Context) (File, error) {
	if err := a.requireAdmin(); err != nil {
		return File{}, err
	}

	ids := a.Selection()
	if len(ids) == 0 {
		return File{}, ErrEmptySelection
	}

	file, err := a.backend.ExportQRPDF(ctx, ids)
	if err != nil {
		return File{}, fmt.Errorf("ошибка печати этикеток: %w", err)
	}

	a.mu.Lock()
	a.selection.Remove(ids...)
	a.mu.Unlock()

	a.log.Info("Этикетки сформированы", "devices", len(ids), "file", file.Name)
	return file, nil
}

// ExportExcel выгружает таблицу на языке lang, по умолчанию из конфигурации
func (a *App) ExportExcel(ctx context.Context, lang string) (File, error) {
	if err := a.requireAdmin(); err != nil {
		return File{}, err
	}
	if lang == "" {
		lang = a.config.Lang
	}

	file, err := a.backend.ExportExcel(ctx, lang)
	if err != nil {
		return File{}, fmt.Errorf("ошибка выгрузки Excel: %w", err)
	}
	return file, nil
}

// Backup скачивает резервную копию всех данных сервиса
func (a *App) Backup(ctx context.Context) (File, error) {
	if err := a.requireAdmin(); err != nil {
		return File{}, err
	}

	file, err := a.backend.Backup(ctx)
	if err != nil {
		return File{}, fmt.Errorf("ошибка резервного копирования: %w", err)
	}

	a.log.Info("Резервная копия получена", "file", file.Name, "bytes", len(file.Data))
	return file, nil
}

func (a *App) ImportExcel(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := a.requireAdmin(); err != nil {
		return "", err
	}
	return a.crud.ImportExcel(ctx, filename, r)
}

// Label рисует PNG этикетку устройства из текущего снимка
func (a *App) Label(id int) (File, error) {
	d, ok := a.Device(id)
	if !ok {
		return File{}, fmt.Errorf("устройство %d: %w", id, inventory.ErrNotFound)
	}

	data, err := label.Render(d, a.config.PublicURL)
	if err != nil {
		return File{}, err
	}

	return File{Name: label.FileName(d), Data: data}, nil
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	return a.backend.HealthCheck(ctx)
}

// Shutdown дожидается фоновых загрузок и закрывает хранилище
func (a *App) Shutdown() error {
	a.wg.Wait()
	return a.storage.Close()
}

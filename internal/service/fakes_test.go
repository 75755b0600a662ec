package service

import (
	"context"
	"sync"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"
)

// memUserRepo applies the same conditions as the Mongo filters so that
// conflict handling can be exercised without a database.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
	// beforeWrite runs inside conditional writes, after the service has read
	// the user. Tests use it to interleave a competing request.
	beforeWrite func()
}

func newMemUserRepo(users ...*models.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.WithdrawalHistory = append([]models.WithdrawalEntry(nil), u.WithdrawalHistory...)
	c.MainInvestmentPackage = append([]models.InvestmentEntry(nil), u.MainInvestmentPackage...)
	c.Notifications = append([]models.Notification(nil), u.Notifications...)
	return &c
}

func (r *memUserRepo) hook() {
	if f := r.beforeWrite; f != nil {
		r.beforeWrite = nil
		f()
	}
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) AppendWithdrawal(_ context.Context, email string, entry models.WithdrawalEntry) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotMatched
	}
	u.WithdrawalHistory = append(u.WithdrawalHistory, entry)
	return cloneUser(u), nil
}

func (r *memUserRepo) ApplyWithdrawalTransition(_ context.Context, email string, t models.WithdrawalTransition) error {
	r.hook()
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return repository.ErrNotMatched
	}
	w := u.Withdrawal(t.TransactionID)
	if w == nil || w.TransactionStatus.Terminal() {
		return repository.ErrNotMatched
	}

	w.TransactionStatus = t.NewStatus
	if t.NewStatus == models.WithdrawalSuccess {
		u.TotalWithdrawn += t.Amount
		switch t.BalanceField {
		case "tradingBalance":
			u.TradingBalance -= t.Amount
		case "planBonus":
			u.PlanBonus -= t.Amount
		case "totalWon":
			u.TotalWon -= t.Amount
		}
	}
	if t.Notification != nil {
		u.Notifications = append(u.Notifications, *t.Notification)
		u.IsReadNotifications = false
	}
	return nil
}

func (r *memUserRepo) SubmitWithdrawalFee(_ context.Context, email, withdrawalID, method string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.withdrawalIn(email, withdrawalID, models.WithdrawalPendingFee)
	if w == nil {
		return repository.ErrNotMatched
	}
	w.FeePaymentMethod = method
	w.FeeSubmittedAt = &at
	return nil
}

func (r *memUserRepo) ConfirmWithdrawalFee(_ context.Context, email, withdrawalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w := r.withdrawalIn(email, withdrawalID, models.WithdrawalPendingFee)
	if w == nil {
		return repository.ErrNotMatched
	}
	w.FeePaid = true
	w.TransactionStatus = models.WithdrawalPending
	return nil
}

func (r *memUserRepo) withdrawalIn(email, id string, status models.WithdrawalStatus) *models.WithdrawalEntry {
	u, ok := r.users[email]
	if !ok {
		return nil
	}
	w := u.Withdrawal(id)
	if w == nil || w.TransactionStatus != status {
		return nil
	}
	return w
}

func (r *memUserRepo) PurchasePlan(_ context.Context, email string, entry models.InvestmentEntry) error {
	r.hook()
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok || u.TradingBalance < entry.Amount {
		return repository.ErrNotMatched
	}
	for i := range u.MainInvestmentPackage {
		if u.MainInvestmentPackage[i].Status == models.PackageActivated {
			u.MainInvestmentPackage[i].Status = models.PackageDeactivated
		}
	}
	u.MainInvestmentPackage = append(u.MainInvestmentPackage, entry)
	u.TradingBalance -= entry.Amount
	u.InvestmentBalance += entry.Amount
	u.InvestmentPackage = entry.Plan
	return nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, email string, p *models.ProfileUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&u.Name, p.Name)
	setString(&u.Phone, p.Phone)
	setString(&u.Password, p.Password)
	setString(&u.WithdrawalPin, p.WithdrawalPin)
	setString(&u.TaxCodePin, p.TaxCodePin)
	setString(&u.CustomMessage, p.CustomMessage)
	setBool(&u.AutoTrades, p.AutoTrades)
	setBool(&u.IsVerified, p.IsVerified)
	setBool(&u.Upgraded, p.Upgraded)

	u.TradingBalance = p.TradingBalance
	u.InvestmentBalance = p.InvestmentBalance
	u.TotalDeposited = p.TotalDeposited
	u.TotalWithdrawn = p.TotalWithdrawn
	u.TotalAssets = p.TotalAssets
	u.TotalWon = p.TotalWon
	u.TotalLoss = p.TotalLoss
	u.LastProfit = p.LastProfit
	u.PlanBonus = p.PlanBonus
	u.TradingProgress = p.TradingProgress
	u.Trade = p.Trade
	return cloneUser(u), nil
}

func (r *memUserRepo) SubmitKYC(_ context.Context, email string, data *models.KYCData, fee float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return repository.ErrNotMatched
	}
	u.KYCData = data
	u.KYCFee = fee
	u.KYCStatus = models.KYCStatusPending
	u.KYCFeePaid = false
	u.IsVerified = false
	return nil
}

func (r *memUserRepo) ReviewKYC(_ context.Context, email string, status models.KYCStatus, n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok || u.KYCStatus != models.KYCStatusPending {
		return repository.ErrNotMatched
	}
	u.KYCStatus = status
	u.IsVerified = status == models.KYCStatusApproved
	u.IsReadNotifications = false
	u.Notifications = append(u.Notifications, n)
	return nil
}

func (r *memUserRepo) user(email string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneUser(r.users[email])
}

type memSettingsRepo struct {
	settings *models.Settings
}

func (r *memSettingsRepo) GetSettings(context.Context) (*models.Settings, error) {
	return r.settings, nil
}

func (r *memSettingsRepo) SaveSettings(_ context.Context, s *models.Settings) error {
	r.settings = s
	return nil
}

type memAddressRepo struct {
	addresses *models.DepositAddresses
}

func (r *memAddressRepo) GetAddresses(context.Context) (*models.DepositAddresses, error) {
	return r.addresses, nil
}

func (r *memAddressRepo) SaveAddresses(_ context.Context, a *models.DepositAddresses) error {
	r.addresses = a
	return nil
}

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type recordingAlerter struct {
	messages []string
}

func (a *recordingAlerter) AlertAdmins(message string) error {
	a.messages = append(a.messages, message)
	return nil
}

type recordingPusher struct {
	pushed map[string][]models.Notification
}

func (p *recordingPusher) PushNotification(email string, n models.Notification) {
	if p.pushed == nil {
		p.pushed = map[string][]models.Notification{}
	}
	p.pushed[email] = append(p.pushed[email], n)
}

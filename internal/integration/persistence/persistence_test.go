package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, kind entity.TransactionKind, amount, category string, ts time.Time) *entity.Transaction {
	t.Helper()
	txn := entity.NewTransaction(userID, kind, decimal.RequireFromString(amount), category, "", ts)
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return txn
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("round-trips a transaction", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		created := seedTransaction(t, repo, userID, entity.TransactionKindDebit, "42.50", "Food", base)

		found, err := repo.FindByIDAndUser(ctx, created.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Category != "Food" || found.Kind != entity.TransactionKindDebit {
			t.Errorf("unexpected transaction: %+v", found)
		}
		if !found.Amount.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("expected amount 42.50, got %s", found.Amount)
		}
	})

	t.Run("scopes lookups to the owner", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		created := seedTransaction(t, repo, userID, entity.TransactionKindDebit, "10", "Food", base)

		if _, err := repo.FindByIDAndUser(ctx, created.ID, otherID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, created.ID, otherID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound on foreign delete, got %v", err)
		}
	})

	t.Run("filters and paginates", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		seedTransaction(t, repo, userID, entity.TransactionKindDebit, "10", "Food", base)
		seedTransaction(t, repo, userID, entity.TransactionKindDebit, "30", "Food", base.AddDate(0, 0, 1))
		seedTransaction(t, repo, userID, entity.TransactionKindCredit, "1000", "Salary", base.AddDate(0, 0, 2))
		seedTransaction(t, repo, otherID, entity.TransactionKindDebit, "99", "Food", base)

		kind := entity.TransactionKindDebit
		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID, Kind: &kind, SortBy: "amount", SortDesc: true},
			adapter.TransactionPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 || len(result.Transactions) != 2 {
			t.Fatalf("expected 2 debits, got total %d len %d", result.Total, len(result.Transactions))
		}
		if !result.Transactions[0].Amount.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected highest amount first, got %s", result.Transactions[0].Amount)
		}

		// Date window keeps only the newest entry.
		start := base.AddDate(0, 0, 2)
		result, err = repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID, StartDate: &start},
			adapter.TransactionPagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 || result.Transactions[0].Category != "Salary" {
			t.Errorf("expected only the salary entry, got %+v", result.Transactions)
		}
	})

	t.Run("computes page counts", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		for i := 0; i < 5; i++ {
			seedTransaction(t, repo, userID, entity.TransactionKindDebit, "10", "Food", base.AddDate(0, 0, i))
		}

		result, err := repo.FindByFilter(ctx,
			adapter.TransactionFilter{UserID: userID},
			adapter.TransactionPagination{Page: 2, Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 5 || result.TotalPages != 3 {
			t.Errorf("expected total 5 over 3 pages, got %d over %d", result.Total, result.TotalPages)
		}
		if len(result.Transactions) != 2 || result.Page != 2 {
			t.Errorf("expected the second page of 2, got %d rows on page %d", len(result.Transactions), result.Page)
		}
	})

	t.Run("updates persisted fields", func(t *testing.T) {
		repo := NewTransactionRepository(openTestDB(t))
		created := seedTransaction(t, repo, userID, entity.TransactionKindDebit, "10", "Food", base)

		created.Amount = decimal.NewFromInt(25)
		created.Category = "Dining"
		if err := repo.Update(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByIDAndUser(ctx, created.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Category != "Dining" || !found.Amount.Equal(decimal.NewFromInt(25)) {
			t.Errorf("update not persisted: %+v", found)
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	t.Run("lists own categories plus defaults", func(t *testing.T) {
		repo := NewCategoryRepository(openTestDB(t))
		if err := repo.CreateBatch(ctx, entity.DefaultCategories()); err != nil {
			t.Fatalf("failed to seed defaults: %v", err)
		}
		if err := repo.Create(ctx, entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		if err := repo.Create(ctx, entity.NewCategory(otherID, "Hobby", entity.CategoryKindExpense, "#000000", "tag")); err != nil {
			t.Fatalf("failed to create foreign category: %v", err)
		}

		visible, err := repo.FindVisibleToUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := len(entity.DefaultCategories()) + 1
		if len(visible) != want {
			t.Fatalf("expected %d categories, got %d", want, len(visible))
		}
		for _, cat := range visible {
			if cat.Name == "Hobby" {
				t.Error("foreign category must not be visible")
			}
		}
		for i := 1; i < len(visible); i++ {
			if visible[i-1].Name > visible[i].Name {
				t.Errorf("expected name order, got %q before %q", visible[i-1].Name, visible[i].Name)
			}
		}
	})

	t.Run("name existence check is case-insensitive", func(t *testing.T) {
		repo := NewCategoryRepository(openTestDB(t))
		if err := repo.Create(ctx, entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		taken, err := repo.ExistsByNameForOwner(ctx, userID, "PETS")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Error("expected PETS to collide with Pets")
		}

		taken, err = repo.ExistsByNameForOwner(ctx, otherID, "Pets")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taken {
			t.Error("another user's name must not collide")
		}
	})

	t.Run("counts only defaults", func(t *testing.T) {
		repo := NewCategoryRepository(openTestDB(t))
		if err := repo.CreateBatch(ctx, entity.DefaultCategories()); err != nil {
			t.Fatalf("failed to seed defaults: %v", err)
		}
		if err := repo.Create(ctx, entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		count, err := repo.CountDefaults(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != int64(len(entity.DefaultCategories())) {
			t.Errorf("expected %d defaults, got %d", len(entity.DefaultCategories()), count)
		}
	})

	t.Run("deletes by id", func(t *testing.T) {
		repo := NewCategoryRepository(openTestDB(t))
		cat := entity.NewCategory(userID, "Pets", entity.CategoryKindExpense, "#facc15", "paw")
		if err := repo.Create(ctx, cat); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}

		if err := repo.Delete(ctx, cat.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, cat.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects a duplicate monthly scope", func(t *testing.T) {
		repo := NewBudgetRepository(openTestDB(t))
		first := entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(100), 2024, 1)
		if err := repo.Create(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dup := entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(200), 2024, 1)
		if err := repo.Create(ctx, dup); !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			t.Errorf("expected ErrBudgetAlreadyExists, got %v", err)
		}

		// A different month is a distinct scope.
		other := entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(200), 2024, 2)
		if err := repo.Create(ctx, other); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("selects monthly and yearly budgets for a period", func(t *testing.T) {
		repo := NewBudgetRepository(openTestDB(t))
		budgets := []*entity.Budget{
			entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(100), 2024, 1),
			entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(120), 2024, 2),
			entity.NewYearlyBudget(userID, "Travel", decimal.NewFromInt(1200), 2024),
			entity.NewYearlyBudget(userID, "Travel", decimal.NewFromInt(900), 2023),
		}
		for _, b := range budgets {
			if err := repo.Create(ctx, b); err != nil {
				t.Fatalf("failed to seed budget: %v", err)
			}
		}

		found, err := repo.FindForPeriod(ctx, userID, 2024, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 2 {
			t.Fatalf("expected the January budget plus the 2024 yearly one, got %d", len(found))
		}
		for _, b := range found {
			if b.Year != 2024 {
				t.Errorf("unexpected year %d", b.Year)
			}
			if b.Period == entity.BudgetPeriodMonthly && (b.Month == nil || *b.Month != 1) {
				t.Errorf("unexpected monthly budget %+v", b)
			}
		}
	})

	t.Run("filters by year and month", func(t *testing.T) {
		repo := NewBudgetRepository(openTestDB(t))
		if err := repo.Create(ctx, entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(100), 2024, 1)); err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
		if err := repo.Create(ctx, entity.NewMonthlyBudget(userID, "Food", decimal.NewFromInt(100), 2023, 1)); err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}

		year := 2024
		found, err := repo.FindByFilter(ctx, adapter.BudgetFilter{UserID: userID, Year: &year})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].Year != 2024 {
			t.Errorf("expected only the 2024 budget, got %+v", found)
		}
	})

	t.Run("deleting an absent budget reports not found", func(t *testing.T) {
		repo := NewBudgetRepository(openTestDB(t))
		if err := repo.Delete(ctx, uuid.New(), userID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a user", func(t *testing.T) {
		repo := NewUserRepository(openTestDB(t))
		user := entity.NewLocalUser("jdoe", "jdoe@example.com", "hash", "Jane", "Doe")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.Email != "jdoe@example.com" || !found.IsActive {
			t.Errorf("unexpected user: %+v", found)
		}
	})

	t.Run("missing users come back nil without error", func(t *testing.T) {
		repo := NewUserRepository(openTestDB(t))

		found, err := repo.FindByID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil, got %+v", found)
		}
	})

	t.Run("finds by email or username", func(t *testing.T) {
		repo := NewUserRepository(openTestDB(t))
		user := entity.NewLocalUser("jdoe", "jdoe@example.com", "hash", "Jane", "Doe")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		byEmail, err := repo.FindByLogin(ctx, "jdoe@example.com")
		if err != nil || byEmail == nil {
			t.Fatalf("expected user by email, got %v %v", byEmail, err)
		}
		byUsername, err := repo.FindByLogin(ctx, "jdoe")
		if err != nil || byUsername == nil {
			t.Fatalf("expected user by username, got %v %v", byUsername, err)
		}
	})

	t.Run("rejects duplicate identifiers", func(t *testing.T) {
		repo := NewUserRepository(openTestDB(t))
		if err := repo.Create(ctx, entity.NewLocalUser("jdoe", "jdoe@example.com", "hash", "Jane", "Doe")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dup := entity.NewLocalUser("jdoe2", "jdoe@example.com", "hash", "Jane", "Doe")
		if err := repo.Create(ctx, dup); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("email taken check ignores the user itself", func(t *testing.T) {
		repo := NewUserRepository(openTestDB(t))
		user := entity.NewLocalUser("jdoe", "jdoe@example.com", "hash", "Jane", "Doe")
		other := entity.NewLocalUser("other", "other@example.com", "hash", "O", "Ther")
		for _, u := range []*entity.User{user, other} {
			if err := repo.Create(ctx, u); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		taken, err := repo.EmailTakenByOther(ctx, "jdoe@example.com", user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taken {
			t.Error("own email must not count as taken")
		}

		taken, err = repo.EmailTakenByOther(ctx, "other@example.com", user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !taken {
			t.Error("another user's email must count as taken")
		}
	})

	t.Run("persists linked google identity", func(t *testing.T) {
		repo := NewUserRepository(openTestDB(t))
		user := entity.NewLocalUser("jdoe", "jdoe@example.com", "hash", "Jane", "Doe")
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user.LinkGoogleID("google-123")
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByGoogleID(ctx, "google-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Errorf("expected the linked user, got %+v", found)
		}
	})
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("groups totals by category and kind", func(t *testing.T) {
		db := openTestDB(t)
		txnRepo := NewTransactionRepository(db)
		repo := NewReportRepository(db)

		seedTransaction(t, txnRepo, userID, entity.TransactionKindDebit, "10.50", "Food", base)
		seedTransaction(t, txnRepo, userID, entity.TransactionKindDebit, "20.25", "Food", base.AddDate(0, 0, 1))
		seedTransaction(t, txnRepo, userID, entity.TransactionKindCredit, "1000", "Salary", base)
		seedTransaction(t, txnRepo, uuid.New(), entity.TransactionKindDebit, "99", "Food", base)

		totals, err := repo.SumByCategory(ctx, userID, nil, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(totals))
		}
		// Ordered by total descending: Salary first.
		if totals[0].Category != "Salary" || !totals[0].Total.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("unexpected first group: %+v", totals[0])
		}
		if totals[1].Category != "Food" || totals[1].Count != 2 {
			t.Errorf("unexpected second group: %+v", totals[1])
		}
		if !totals[1].Total.Equal(decimal.RequireFromString("30.75")) {
			t.Errorf("expected Food total 30.75, got %s", totals[1].Total)
		}
	})

	t.Run("sums debits within the window", func(t *testing.T) {
		db := openTestDB(t)
		txnRepo := NewTransactionRepository(db)
		repo := NewReportRepository(db)

		seedTransaction(t, txnRepo, userID, entity.TransactionKindDebit, "50", "Food", base)
		seedTransaction(t, txnRepo, userID, entity.TransactionKindDebit, "70", "Food", base.AddDate(0, 1, 0))
		seedTransaction(t, txnRepo, userID, entity.TransactionKindCredit, "1000", "Salary", base)

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
		totals, err := repo.SumDebitsByCategory(ctx, userID, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(totals) != 1 {
			t.Fatalf("expected 1 category, got %d", len(totals))
		}
		if !totals["Food"].Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected Food total 50, got %s", totals["Food"])
		}
	})

	t.Run("lists entries oldest first", func(t *testing.T) {
		db := openTestDB(t)
		txnRepo := NewTransactionRepository(db)
		repo := NewReportRepository(db)

		seedTransaction(t, txnRepo, userID, entity.TransactionKindDebit, "20", "Food", base.AddDate(0, 1, 0))
		seedTransaction(t, txnRepo, userID, entity.TransactionKindDebit, "10", "Food", base)

		entries, err := repo.ListEntries(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if !entries[0].Amount.Equal(decimal.NewFromInt(10)) {
			t.Errorf("expected the oldest entry first, got %s", entries[0].Amount)
		}
	})
}

func TestIsDuplicateKey(t *testing.T) {
	t.Run("matches the translated sentinel", func(t *testing.T) {
		if !isDuplicateKey(gorm.ErrDuplicatedKey) {
			t.Error("expected the gorm sentinel to count as a duplicate key")
		}
	})

	t.Run("matches a wrapped sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("create budget: %w", gorm.ErrDuplicatedKey)
		if !isDuplicateKey(wrapped) {
			t.Error("expected a wrapped sentinel to count as a duplicate key")
		}
	})

	t.Run("ignores other errors", func(t *testing.T) {
		if isDuplicateKey(gorm.ErrRecordNotFound) {
			t.Error("record-not-found is not a duplicate key")
		}
		if isDuplicateKey(nil) {
			t.Error("nil is not a duplicate key")
		}
	})
}

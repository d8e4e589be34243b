package services

import "github.com/isdelr/expense-tracker-be/internal/models"

var categoryCatalogue = []models.Category{
	{Name: "Food & Dining", Icon: "🍔", Color: "#FF6B6B", Kind: models.KindExpense},
	{Name: "Transportation", Icon: "🚗", Color: "#4ECDC4", Kind: models.KindExpense},
	{Name: "Shopping", Icon: "🛍️", Color: "#FFE66D", Kind: models.KindExpense},
	{Name: "Entertainment", Icon: "🎬", Color: "#95E1D3", Kind: models.KindExpense},
	{Name: "Bills & Utilities", Icon: "💡", Color: "#F38181", Kind: models.KindExpense},
	{Name: "Health & Fitness", Icon: "💪", Color: "#AA96DA", Kind: models.KindExpense},
	{Name: "Education", Icon: "📚", Color: "#FCBAD3", Kind: models.KindExpense},
	{Name: "Travel", Icon: "✈️", Color: "#A8E6CF", Kind: models.KindExpense},
	{Name: "Other", Icon: "📦", Color: "#DCEDC1", Kind: models.KindExpense},
	{Name: "Salary", Icon: "💰", Color: "#00C49F", Kind: models.KindIncome},
	{Name: "Business", Icon: "💼", Color: "#0088FE", Kind: models.KindIncome},
	{Name: "Freelance", Icon: "💻", Color: "#FFBB28", Kind: models.KindIncome},
	{Name: "Investment", Icon: "📈", Color: "#FF8042", Kind: models.KindIncome},
	{Name: "Gift", Icon: "🎁", Color: "#8884D8", Kind: models.KindIncome},
	{Name: "Other", Icon: "💵", Color: "#82ca9d", Kind: models.KindIncome},
}

// CategoryServiceProvider defines the interface for the category catalogue.
type CategoryServiceProvider interface {
	List(kind string) ([]models.Category, error)
}

// CategoryService serves the fixed catalogue of suggested categories.
type CategoryService struct{}

// NewCategoryService creates a new CategoryService.
func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

// List returns the catalogue, optionally filtered by kind. An empty kind
// returns every category.
func (s *CategoryService) List(kind string) ([]models.Category, error) {
	if kind == "" {
		out := make([]models.Category, len(categoryCatalogue))
		copy(out, categoryCatalogue)
		return out, nil
	}
	k := models.Kind(kind)
	if !k.Valid() {
		return nil, newError(ErrValidation, "Type must be 'expense' or 'income'")
	}

	var out []models.Category
	for _, c := range categoryCatalogue {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out, nil
}

package populate

// Static descriptor sets, one per top-level entity. Projections and
// limits mirror what each read endpoint is allowed to expose.

var CompanyRelations = []Relation{
	{
		Field:      "owner",
		From:       "users",
		LocalField: "owner",
		Project:    []string{"firstName", "lastName", "image"},
		Single:     true,
	},
	{
		Field:      "employees",
		From:       "users",
		LocalField: "employees",
		Project:    []string{"firstName", "lastName", "image", "role"},
		Limit:      4,
	},
	{
		Field:      "accountant",
		From:       "accountants",
		LocalField: "accountant",
		Project:    []string{"firstName", "lastName", "email"},
		Single:     true,
	},
	{
		Field:      "products",
		From:       "products",
		LocalField: "products",
		Project:    []string{"name", "price"},
		Limit:      4,
	},
	{
		Field:      "clients",
		From:       "clients",
		LocalField: "clients",
		Project:    []string{"firstName", "lastName", "phone"},
		Limit:      4,
	},
	{
		Field:      "purchases",
		From:       "purchases",
		LocalField: "purchases",
		Project:    []string{"totalAmount", "status", "client", "products"},
		Limit:      4,
		Populate: []Relation{
			{
				Field:      "client",
				From:       "clients",
				LocalField: "client",
				Project:    []string{"firstName", "lastName"},
				Single:     true,
			},
			{
				Field:      "products",
				From:       "products",
				LocalField: "products",
				Project:    []string{"name", "price"},
			},
		},
	},
}

var ClientRelations = []Relation{
	{
		Field:      "purchases",
		From:       "purchases",
		LocalField: "purchases",
		Project:    []string{"date", "totalAmount", "status"},
	},
	{
		Field:      "createdBy",
		From:       "users",
		LocalField: "createdBy",
		Project:    []string{"firstName", "lastName"},
		Single:     true,
	},
}

var AccountantRelations = []Relation{
	{
		Field:      "createdBy",
		From:       "users",
		LocalField: "createdBy",
		Project:    []string{"firstName", "lastName"},
		Single:     true,
	},
}

var ProductRelations = []Relation{
	{
		Field:      "purchases",
		From:       "purchases",
		LocalField: "purchases",
		Project:    []string{"date", "totalAmount", "status"},
	},
	{
		Field:      "createdBy",
		From:       "users",
		LocalField: "createdBy",
		Project:    []string{"firstName", "lastName"},
		Single:     true,
	},
}

var PurchaseRelations = []Relation{
	{
		Field:      "client",
		From:       "clients",
		LocalField: "client",
		Project:    []string{"firstName", "lastName"},
		Single:     true,
	},
	{
		Field:      "products",
		From:       "products",
		LocalField: "products",
		Project:    []string{"name", "price"},
	},
	{
		Field:      "createdBy",
		From:       "users",
		LocalField: "createdBy",
		Project:    []string{"firstName", "lastName"},
		Single:     true,
	},
}

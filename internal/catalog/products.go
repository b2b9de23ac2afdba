package catalog

// items is the catalog, in the order tiles appear in the app.
var items = []Product{
	{
		Name:     "Yellow Thin Pad",
		Category: CategoryMenstrual,
		Specs:    []string{"Size 1 Regular", "Ultra Thin", "8 hours protection", "Brand: Always"},
	},
	{
		Name:     "Green Thin Pad",
		Category: CategoryMenstrual,
		Specs:    []string{"Size 2 Super Long", "Ultra Thin", "8 hours protection", "Brand: Always"},
	},
	{
		Name:     "Orange Thin Pad",
		Category: CategoryMenstrual,
		Specs:    []string{"Size 4 Overnight", "Ultra Thin", "11 hours protection", "Brand: Always"},
	},
	{
		Name:     "Green Maxi Pad",
		Category: CategoryMenstrual,
		Specs:    []string{"Size 2 Super Long", "Thicker pad and feeling of extra security", "10 hours protection", "Brand: Always"},
	},
	{
		Name:     "Purple Maxi Pad",
		Category: CategoryMenstrual,
		Specs:    []string{"Size 5 Extra Heavy Overnight", "Thicker pad and feeling of extra security", "12 hours protection", "Brand: Always"},
	},
	{
		Name:     "Purple Thin Pad",
		Category: CategoryMenstrual,
		Specs:    []string{"Size 5 Extra Heavy Overnight", "Ultra Thin", "12 hours protection", "Brand: Always"},
	},
	{
		Name:     "Light Tampon",
		Category: CategoryMenstrual,
		Specs:    []string{"Light flow", "8 hours wear time", "Brand: Tampax Pearl"},
	},
	{
		Name:     "Regular Tampon",
		Category: CategoryMenstrual,
		Specs:    []string{"Regular flow", "8 hours wear time", "Brand: Tampax Pearl"},
	},
	{
		Name:     "Super Tampon",
		Category: CategoryMenstrual,
		Specs:    []string{"Heavier flow", "8 hours wear time", "Brand: Tampax Pearl"},
	},
	{
		Name:     "Menstrual Disc",
		Category: CategoryMenstrual,
		Specs: []string{
			"Reusable", "12 hours wear time", "Includes info card",
			"Disc-shaped device that collects blood",
			"Sits below vaginal fornix, secured by pubic bone",
			"One size fits all", "Brand: allMatters", "Limit: 1 per year",
			"[Menstrual Disc Info](https://allmatters.com/en-us/blogs/blog/how-to-use-a-menstrual-disc)",
		},
		Limit: 1,
	},
	{
		Name:     "Menstrual Cup (Mini)",
		Category: CategoryMenstrual,
		Specs: []string{
			"Size Mini: Lighter flow/low cervix/prefer smaller size",
			"Includes info card", "Reusable", "12 hours wear time",
			"Creates gentle seal in vaginal canal", "Tail for removal",
			"Brand: allMatters", "Limit: 1 per year",
			"[Menstrual Cup Size Guide](https://allmatters.com/en-us/pages/cup-size-guide)",
		},
		Limit: 1,
	},
	{
		Name:     "Menstrual Cup (A)",
		Category: CategoryMenstrual,
		Specs: []string{
			"Size A: Haven't given birth vaginally/medium to high cervix",
			"Includes info card", "Reusable", "12 hours wear time",
			"Creates gentle seal in vaginal canal", "Tail for removal",
			"Brand: allMatters", "Limit: 1 per year",
			"[Menstrual Cup Size Guide](https://allmatters.com/en-us/pages/cup-size-guide)",
		},
		Limit: 1,
	},
	{
		Name:     "Lubed Reg Condom",
		Category: CategorySaferSex,
		Specs: []string{
			"Lubricated", "Size: Regular", "Contains latex", "Brand: Trojan ENZ",
			"Suitable for oral, vaginal, and anal sex",
			"[Choosing the best condom for you](https://www.bedsider.org/birth-control/condom)",
		},
	},
	{
		Name:     "Non-Lubed Reg Condom",
		Category: CategorySaferSex,
		Specs: []string{
			"Non-lubricated", "Size: Regular", "Contains latex", "Brand: LifeStyles",
			"Suitable for oral, vaginal, and anal sex",
			"[Choosing the best condom for you](https://www.bedsider.org/birth-control/condom)",
		},
	},
	{
		Name:     "Latex-free Condom",
		Category: CategorySaferSex,
		Specs: []string{
			"Lubricated", "Latex-free: Polyisoprene material", "Brand: SKYN",
			"Suitable for oral, vaginal, and anal sex",
			"[Choosing the best condom for you](https://www.bedsider.org/birth-control/condom)",
		},
	},
	{
		Name:     "Magnum Condom",
		Category: CategorySaferSex,
		Specs: []string{
			"Lubricated", "Size: Large", "Contains latex", "Brand: Trojan Magnum",
			"Suitable for oral, vaginal, and anal sex",
			"[Choosing the best condom for you](https://www.bedsider.org/birth-control/condom)",
		},
	},
	{
		Name:     "Internal Condom",
		Category: CategorySaferSex,
		Specs:    []string{"Use within vagina or anus during sex", "Latex-free", "Nitrile material", "Brand: FC2"},
	},
	{
		Name:     "Strawberry Dental Dam",
		Category: CategorySaferSex,
		Specs: []string{
			"Covers vagina or anus during oral sex", "Scent: Strawberry",
			"Contains latex", "Brand: Satin",
			"[Dental Dam Info](https://my.clevelandclinic.org/health/drugs/22887-dental-dam)",
		},
	},
	{
		Name:     "Vanilla Dental Dam",
		Category: CategorySaferSex,
		Specs: []string{
			"Covers vagina or anus during oral sex", "Scent: Vanilla",
			"Contains latex", "Brand: Satin",
			"[Dental Dam Info](https://my.clevelandclinic.org/health/drugs/22887-dental-dam)",
		},
	},
	{
		Name:     "Spearmint Dental Dam",
		Category: CategorySaferSex,
		Specs: []string{
			"Covers vagina or anus during oral sex", "Scent: Spearmint",
			"Contains latex", "Brand: Satin",
			"[Dental Dam Info](https://my.clevelandclinic.org/health/drugs/22887-dental-dam)",
		},
	},
	{
		Name:     "Grape Dental Dam",
		Category: CategorySaferSex,
		Specs: []string{
			"Covers vagina or anus during oral sex", "Scent: Grape",
			"Contains latex", "Brand: Satin",
			"[Dental Dam Info](https://my.clevelandclinic.org/health/drugs/22887-dental-dam)",
		},
	},
	{
		Name:     "Unscented Dental Dam",
		Category: CategorySaferSex,
		Specs: []string{
			"Covers vagina or anus during oral sex", "Unscented", "Latex-free",
			"Polyisoprene material", "Brand: Harmony",
			"[Dental Dam Info](https://my.clevelandclinic.org/health/drugs/22887-dental-dam)",
		},
	},
	{
		Name:     "Lubricant",
		Category: CategorySaferSex,
		Specs:    []string{"Water-based", "Packet", "Use on skin or condom", "Brand: Oasis"},
	},
	{
		Name:     "Pregnancy Test",
		Category: CategoryEmergency,
		Specs: []string{
			"Over 99% accurate after missed period", "Results in minutes",
			"Detects hCG hormone in your urine", "Easy-to-use at-home test",
			"Brand: Pregmate",
		},
	},
	{
		Name:     "Plan B",
		Category: CategoryEmergency,
		Specs: []string{
			"Reduce chance of pregnancy after unprotected sex",
			"Take within 72 hours", "Weight limit: 165 lbs",
			"Contains levonorgestrel: hormone that prevents ovulation/fertilization",
			"Not a replacement for missed birth control pill",
			"Does not affect existing pregnancy or harm developing embryo",
			"Brand: Plan B One-Step",
		},
		Limit: 3,
	},
}

package tables

import "github.com/rfoley/cablecalc/pkg/domain/entities"

// aluminiumRows is the aluminium XLPE/SWA rating table, sorted ascending by
// rating. Aluminium is not stocked below 16mm²; units as per copperRows.
var aluminiumRows = []entities.CableRatingRow{
	{Size: "16", RatingAir: 76, RatingDuct: 62, RatingGround: 67, ImpedanceAC: 1.91, VoltDrop3Ph: 3.9, VoltDrop1Ph: 4.5, Diameter3C: 17.8, Mass3C: 480, Diameter4C: 19.7, Mass4C: 560, SupplyCost: dec("6.90"), InstallCost: dec("6.60"), TermCost: dec("5.40")},
	{Size: "25", RatingAir: 100, RatingDuct: 82, RatingGround: 88, ImpedanceAC: 1.2, VoltDrop3Ph: 2.5, VoltDrop1Ph: 2.9, Diameter3C: 20.5, Mass3C: 640, Diameter4C: 22.8, Mass4C: 760, SupplyCost: dec("9.80"), InstallCost: dec("7.40"), TermCost: dec("6.50")},
	{Size: "35", RatingAir: 123, RatingDuct: 100, RatingGround: 106, ImpedanceAC: 0.868, VoltDrop3Ph: 1.8, VoltDrop1Ph: 2.1, Diameter3C: 22.6, Mass3C: 790, Diameter4C: 25.2, Mass4C: 950, SupplyCost: dec("12.70"), InstallCost: dec("8.20"), TermCost: dec("7.60")},
	{Size: "50", RatingAir: 148, RatingDuct: 120, RatingGround: 126, ImpedanceAC: 0.641, VoltDrop3Ph: 1.35, VoltDrop1Ph: 1.55, Diameter3C: 25.3, Mass3C: 980, Diameter4C: 28.3, Mass4C: 1190, SupplyCost: dec("16.40"), InstallCost: dec("9.10"), TermCost: dec("8.90")},
	{Size: "70", RatingAir: 189, RatingDuct: 152, RatingGround: 156, ImpedanceAC: 0.443, VoltDrop3Ph: 0.94, VoltDrop1Ph: 1.08, Diameter3C: 28.6, Mass3C: 1280, Diameter4C: 32.1, Mass4C: 1560, SupplyCost: dec("22.30"), InstallCost: dec("10.30"), TermCost: dec("10.40")},
	{Size: "95", RatingAir: 230, RatingDuct: 182, RatingGround: 185, ImpedanceAC: 0.32, VoltDrop3Ph: 0.7, VoltDrop1Ph: 0.8, Diameter3C: 32.3, Mass3C: 1630, Diameter4C: 36.4, Mass4C: 2010, SupplyCost: dec("29.60"), InstallCost: dec("11.80"), TermCost: dec("12.10")},
	{Size: "120", RatingAir: 265, RatingDuct: 210, RatingGround: 211, ImpedanceAC: 0.253, VoltDrop3Ph: 0.57, VoltDrop1Ph: 0.65, Diameter3C: 35.4, Mass3C: 1950, Diameter4C: 40.0, Mass4C: 2420, SupplyCost: dec("36.50"), InstallCost: dec("13.20"), TermCost: dec("13.80")},
	{Size: "150", RatingAir: 304, RatingDuct: 235, RatingGround: 237, ImpedanceAC: 0.206, VoltDrop3Ph: 0.48, VoltDrop1Ph: 0.55, Diameter3C: 38.9, Mass3C: 2320, Diameter4C: 44.0, Mass4C: 2890, SupplyCost: dec("44.20"), InstallCost: dec("14.90"), TermCost: dec("15.70")},
	{Size: "185", RatingAir: 347, RatingDuct: 266, RatingGround: 268, ImpedanceAC: 0.164, VoltDrop3Ph: 0.41, VoltDrop1Ph: 0.47, Diameter3C: 43.0, Mass3C: 2790, Diameter4C: 48.7, Mass4C: 3480, SupplyCost: dec("54.10"), InstallCost: dec("16.80"), TermCost: dec("17.80")},
	{Size: "240", RatingAir: 408, RatingDuct: 312, RatingGround: 310, ImpedanceAC: 0.125, VoltDrop3Ph: 0.34, VoltDrop1Ph: 0.39, Diameter3C: 48.1, Mass3C: 3460, Diameter4C: 54.5, Mass4C: 4330, SupplyCost: dec("69.30"), InstallCost: dec("19.40"), TermCost: dec("20.30")},
	{Size: "300", RatingAir: 470, RatingDuct: 356, RatingGround: 349, ImpedanceAC: 0.1, VoltDrop3Ph: 0.3, VoltDrop1Ph: 0.34, Diameter3C: 53.0, Mass3C: 4210, Diameter4C: 60.1, Mass4C: 5280, SupplyCost: dec("85.40"), InstallCost: dec("22.30"), TermCost: dec("23.10")},
	{Size: "400", RatingAir: 534, RatingDuct: 438, RatingGround: 400, ImpedanceAC: 0.0778, VoltDrop3Ph: 0.27, VoltDrop1Ph: 0.31, Diameter3C: 59.3, Mass3C: 5150, Diameter4C: 67.3, Mass4C: 6470, SupplyCost: dec("107.80"), InstallCost: dec("25.80"), TermCost: dec("26.30")},
	{Size: "500", RatingAir: 612, RatingDuct: 500, RatingGround: 450, ImpedanceAC: 0.0605, VoltDrop3Ph: 0.25, VoltDrop1Ph: 0.29, Diameter3C: 66.3, Mass3C: 6330, Diameter4C: 75.4, Mass4C: 7980, SupplyCost: dec("134.90"), InstallCost: dec("29.90"), TermCost: dec("29.90")},
	{Size: "630", RatingAir: 704, RatingDuct: 578, RatingGround: 508, ImpedanceAC: 0.0469, VoltDrop3Ph: 0.23, VoltDrop1Ph: 0.26, Diameter3C: 74.6, Mass3C: 7950, Diameter4C: 84.9, Mass4C: 10050, SupplyCost: dec("171.20"), InstallCost: dec("34.80"), TermCost: dec("34.20")},
}

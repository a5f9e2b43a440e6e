package tables

import (
	"github.com/shopspring/decimal"

	"github.com/rfoley/cablecalc/pkg/domain/entities"
)

// copperRows is the copper XLPE/SWA rating table, sorted ascending by
// rating. Ratings in amps, impedance in ohms/km, voltage drop in mV/A/m,
// diameter in mm, mass in kg/km, costs per metre and per termination end.
var copperRows = []entities.CableRatingRow{
	{Size: "1.5", RatingAir: 23, RatingDuct: 19, RatingGround: 21, ImpedanceAC: 12.1, VoltDrop3Ph: 25, VoltDrop1Ph: 29, Diameter3C: 11.1, Mass3C: 180, Diameter4C: 12.1, Mass4C: 205, SupplyCost: dec("2.10"), InstallCost: dec("4.50"), TermCost: dec("2.50")},
	{Size: "2.5", RatingAir: 31, RatingDuct: 26, RatingGround: 29, ImpedanceAC: 7.41, VoltDrop3Ph: 15, VoltDrop1Ph: 17.5, Diameter3C: 12.0, Mass3C: 230, Diameter4C: 13.1, Mass4C: 265, SupplyCost: dec("2.80"), InstallCost: dec("4.80"), TermCost: dec("2.80")},
	{Size: "4", RatingAir: 42, RatingDuct: 35, RatingGround: 38, ImpedanceAC: 4.61, VoltDrop3Ph: 9.5, VoltDrop1Ph: 11, Diameter3C: 13.0, Mass3C: 300, Diameter4C: 14.3, Mass4C: 350, SupplyCost: dec("3.90"), InstallCost: dec("5.10"), TermCost: dec("3.20")},
	{Size: "6", RatingAir: 53, RatingDuct: 44, RatingGround: 48, ImpedanceAC: 3.08, VoltDrop3Ph: 6.4, VoltDrop1Ph: 7.4, Diameter3C: 14.0, Mass3C: 375, Diameter4C: 15.4, Mass4C: 440, SupplyCost: dec("5.10"), InstallCost: dec("5.50"), TermCost: dec("3.60")},
	{Size: "10", RatingAir: 73, RatingDuct: 60, RatingGround: 65, ImpedanceAC: 1.83, VoltDrop3Ph: 3.8, VoltDrop1Ph: 4.4, Diameter3C: 15.8, Mass3C: 520, Diameter4C: 17.4, Mass4C: 615, SupplyCost: dec("7.60"), InstallCost: dec("6.00"), TermCost: dec("4.20")},
	{Size: "16", RatingAir: 97, RatingDuct: 80, RatingGround: 87, ImpedanceAC: 1.15, VoltDrop3Ph: 2.4, VoltDrop1Ph: 2.8, Diameter3C: 17.6, Mass3C: 700, Diameter4C: 19.5, Mass4C: 835, SupplyCost: dec("10.80"), InstallCost: dec("6.60"), TermCost: dec("5.00")},
	{Size: "25", RatingAir: 128, RatingDuct: 105, RatingGround: 112, ImpedanceAC: 0.727, VoltDrop3Ph: 1.55, VoltDrop1Ph: 1.75, Diameter3C: 20.3, Mass3C: 980, Diameter4C: 22.6, Mass4C: 1175, SupplyCost: dec("15.90"), InstallCost: dec("7.40"), TermCost: dec("6.00")},
	{Size: "35", RatingAir: 157, RatingDuct: 128, RatingGround: 136, ImpedanceAC: 0.524, VoltDrop3Ph: 1.1, VoltDrop1Ph: 1.25, Diameter3C: 22.4, Mass3C: 1250, Diameter4C: 25.0, Mass4C: 1510, SupplyCost: dec("21.10"), InstallCost: dec("8.20"), TermCost: dec("7.00")},
	{Size: "50", RatingAir: 190, RatingDuct: 154, RatingGround: 161, ImpedanceAC: 0.387, VoltDrop3Ph: 0.81, VoltDrop1Ph: 0.93, Diameter3C: 25.1, Mass3C: 1600, Diameter4C: 28.1, Mass4C: 1950, SupplyCost: dec("28.40"), InstallCost: dec("9.10"), TermCost: dec("8.20")},
	{Size: "70", RatingAir: 242, RatingDuct: 194, RatingGround: 200, ImpedanceAC: 0.268, VoltDrop3Ph: 0.57, VoltDrop1Ph: 0.65, Diameter3C: 28.3, Mass3C: 2150, Diameter4C: 31.8, Mass4C: 2640, SupplyCost: dec("39.70"), InstallCost: dec("10.30"), TermCost: dec("9.60")},
	{Size: "95", RatingAir: 294, RatingDuct: 233, RatingGround: 237, ImpedanceAC: 0.193, VoltDrop3Ph: 0.43, VoltDrop1Ph: 0.49, Diameter3C: 32.0, Mass3C: 2800, Diameter4C: 36.1, Mass4C: 3460, SupplyCost: dec("53.50"), InstallCost: dec("11.80"), TermCost: dec("11.20")},
	{Size: "120", RatingAir: 339, RatingDuct: 268, RatingGround: 270, ImpedanceAC: 0.153, VoltDrop3Ph: 0.35, VoltDrop1Ph: 0.4, Diameter3C: 35.0, Mass3C: 3450, Diameter4C: 39.5, Mass4C: 4270, SupplyCost: dec("66.80"), InstallCost: dec("13.20"), TermCost: dec("12.80")},
	{Size: "150", RatingAir: 389, RatingDuct: 300, RatingGround: 304, ImpedanceAC: 0.124, VoltDrop3Ph: 0.29, VoltDrop1Ph: 0.33, Diameter3C: 38.5, Mass3C: 4150, Diameter4C: 43.5, Mass4C: 5170, SupplyCost: dec("81.70"), InstallCost: dec("14.90"), TermCost: dec("14.60")},
	{Size: "185", RatingAir: 444, RatingDuct: 340, RatingGround: 343, ImpedanceAC: 0.0991, VoltDrop3Ph: 0.25, VoltDrop1Ph: 0.28, Diameter3C: 42.5, Mass3C: 5050, Diameter4C: 48.1, Mass4C: 6300, SupplyCost: dec("100.90"), InstallCost: dec("16.80"), TermCost: dec("16.60")},
	{Size: "240", RatingAir: 522, RatingDuct: 398, RatingGround: 396, ImpedanceAC: 0.0754, VoltDrop3Ph: 0.21, VoltDrop1Ph: 0.24, Diameter3C: 47.5, Mass3C: 6400, Diameter4C: 53.8, Mass4C: 8000, SupplyCost: dec("130.50"), InstallCost: dec("19.40"), TermCost: dec("19.00")},
	{Size: "300", RatingAir: 601, RatingDuct: 455, RatingGround: 447, ImpedanceAC: 0.0601, VoltDrop3Ph: 0.185, VoltDrop1Ph: 0.21, Diameter3C: 52.3, Mass3C: 7900, Diameter4C: 59.3, Mass4C: 9900, SupplyCost: dec("161.80"), InstallCost: dec("22.30"), TermCost: dec("21.60")},
	{Size: "400", RatingAir: 683, RatingDuct: 560, RatingGround: 511, ImpedanceAC: 0.047, VoltDrop3Ph: 0.17, VoltDrop1Ph: 0.195, Diameter3C: 58.5, Mass3C: 9750, Diameter4C: 66.4, Mass4C: 12250, SupplyCost: dec("205.40"), InstallCost: dec("25.80"), TermCost: dec("24.60")},
	{Size: "500", RatingAir: 783, RatingDuct: 640, RatingGround: 575, ImpedanceAC: 0.0366, VoltDrop3Ph: 0.16, VoltDrop1Ph: 0.185, Diameter3C: 65.4, Mass3C: 12100, Diameter4C: 74.3, Mass4C: 15250, SupplyCost: dec("258.90"), InstallCost: dec("29.90"), TermCost: dec("28.00")},
	{Size: "630", RatingAir: 900, RatingDuct: 740, RatingGround: 650, ImpedanceAC: 0.0283, VoltDrop3Ph: 0.15, VoltDrop1Ph: 0.17, Diameter3C: 73.5, Mass3C: 15300, Diameter4C: 83.6, Mass4C: 19300, SupplyCost: dec("331.60"), InstallCost: dec("34.80"), TermCost: dec("32.00")},
}

// dec parses a table cost literal; the literals are compile-time constants
// so a parse failure is a programming error.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

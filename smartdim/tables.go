// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smartdim

// gamma300GraTable is the reference gradation of the 300cd 2.2 curve, in
// millicandela, indexed by gray level.
var gamma300GraTable = [NumGray]uint32{
	0, 2, 7, 17, 32, 53, 78, 110, 148, 191, 241, 298, 361, 430, 506, 589,
	679, 776, 880, 991, 1109, 1235, 1368, 1508, 1657, 1812, 1975, 2147, 2325, 2512, 2706, 2909,
	3119, 3338, 3564, 3799, 4042, 4293, 4553, 4820, 5096, 5381, 5674, 5975, 6285, 6604, 6931, 7267,
	7611, 7965, 8327, 8697, 9077, 9465, 9863, 10269, 10684, 11109, 11542, 11984, 12436, 12896, 13366, 13845,
	14333, 14830, 15337, 15852, 16378, 16912, 17456, 18009, 18572, 19144, 19726, 20317, 20918, 21528, 22148, 22778,
	23417, 24066, 24724, 25392, 26070, 26758, 27456, 28163, 28880, 29607, 30344, 31090, 31847, 32613, 33390, 34176,
	34973, 35779, 36596, 37422, 38259, 39106, 39963, 40830, 41707, 42594, 43492, 44399, 45317, 46246, 47184, 48133,
	49092, 50062, 51042, 52032, 53032, 54043, 55065, 56097, 57139, 58192, 59255, 60329, 61413, 62508, 63613, 64729,
	65856, 66993, 68141, 69299, 70469, 71648, 72839, 74040, 75252, 76475, 77708, 78952, 80207, 81473, 82750, 84037,
	85336, 86645, 87965, 89296, 90638, 91990, 93354, 94729, 96114, 97511, 98919, 100337, 101767, 103208, 104659, 106122,
	107596, 109081, 110577, 112085, 113603, 115132, 116673, 118225, 119788, 121362, 122948, 124544, 126152, 127772, 129402, 131044,
	132697, 134361, 136037, 137724, 139422, 141132, 142853, 144586, 146330, 148085, 149852, 151630, 153419, 155220, 157033, 158857,
	160692, 162540, 164398, 166268, 168150, 170043, 171948, 173864, 175792, 177731, 179683, 181645, 183620, 185606, 187603, 189613,
	191634, 193667, 195711, 197767, 199835, 201915, 204006, 206109, 208224, 210351, 212489, 214640, 216802, 218976, 221161, 223359,
	225569, 227790, 230023, 232268, 234525, 236794, 239075, 241368, 243672, 245989, 248318, 250658, 253011, 255375, 257752, 260141,
	262541, 264954, 267379, 269815, 272264, 274725, 277198, 279683, 282180, 284689, 287211, 289744, 292290, 294848, 297418, 300000,
}

// gammaControlTable holds the tone curves, indexed by Curve then gray level.
// Each curve is scaled so that gray 255 is 1000000.
var gammaControlTable = [NumCurves][NumGray]uint32{
	G21: {
		0, 9, 38, 89, 162, 259, 381, 526, 696, 892, 1112, 1359,
		1631, 1930, 2255, 2606, 2985, 3390, 3822, 4282, 4769, 5284, 5826, 6396,
		6994, 7620, 8274, 8956, 9667, 10406, 11174, 11971, 12796, 13650, 14534, 15446,
		16387, 17358, 18357, 19387, 20445, 21533, 22651, 23798, 24976, 26183, 27419, 28686,
		29983, 31310, 32667, 34054, 35471, 36919, 38397, 39905, 41444, 43013, 44613, 46244,
		47905, 49597, 51320, 53074, 54858, 56674, 58520, 60398, 62307, 64246, 66217, 68219,
		70253, 72318, 74414, 76541, 78700, 80890, 83112, 85366, 87651, 89967, 92316, 94696,
		97107, 99551, 102026, 104534, 107073, 109644, 112247, 114882, 117549, 120249, 122980, 125743,
		128539, 131367, 134227, 137120, 140044, 143001, 145991, 149013, 152067, 155154, 158273, 161425,
		164610, 167827, 171076, 174359, 177674, 181022, 184402, 187815, 191261, 194740, 198252, 201797,
		205374, 208985, 212628, 216305, 220014, 223757, 227533, 231341, 235183, 239058, 242967, 246908,
		250883, 254891, 258932, 263007, 267114, 271256, 275430, 279638, 283880, 288155, 292463, 296805,
		301181, 305589, 310032, 314508, 319018, 323561, 328139, 332749, 337394, 342072, 346784, 351530,
		356309, 361123, 365970, 370851, 375766, 380715, 385698, 390715, 395765, 400850, 405969, 411122,
		416308, 421529, 426784, 432073, 437397, 442754, 448146, 453571, 459031, 464525, 470054, 475617,
		481214, 486845, 492511, 498211, 503945, 509714, 515517, 521354, 527226, 533133, 539074, 545049,
		551059, 557104, 563183, 569296, 575444, 581627, 587845, 594097, 600383, 606705, 613061, 619451,
		625877, 632337, 638832, 645362, 651926, 658526, 665160, 671829, 678533, 685272, 692045, 698854,
		705697, 712576, 719489, 726438, 733421, 740439, 747493, 754581, 761704, 768863, 776057, 783285,
		790549, 797848, 805182, 812551, 819956, 827395, 834870, 842380, 849925, 857506, 865122, 872773,
		880459, 888181, 895938, 903730, 911558, 919421, 927319, 935253, 943222, 951227, 959267, 967343,
		975454, 983600, 991782, 1000000,
	},
	G212: {
		0, 8, 34, 81, 149, 240, 353, 489, 650, 834, 1043, 1276,
		1535, 1818, 2128, 2463, 2824, 3211, 3625, 4065, 4532, 5026, 5547, 6095,
		6671, 7274, 7905, 8563, 9249, 9964, 10706, 11477, 12276, 13103, 13960, 14844,
		15758, 16700, 17672, 18672, 19702, 20760, 21849, 22966, 24113, 25290, 26496, 27732,
		28998, 30294, 31619, 32975, 34361, 35777, 37223, 38699, 40206, 41744, 43311, 44910,
		46539, 48199, 49889, 51610, 53363, 55146, 56960, 58805, 60681, 62589, 64527, 66497,
		68498, 70531, 72595, 74690, 76817, 78976, 81166, 83388, 85642, 87927, 90244, 92593,
		94974, 97387, 99832, 102309, 104819, 107360, 109933, 112539, 115177, 117847, 120550, 123285,
		126052, 128852, 131684, 134549, 137447, 140377, 143340, 146336, 149364, 152425, 155519, 158646,
		161805, 164998, 168224, 171482, 174774, 178099, 181457, 184848, 188272, 191729, 195220, 198744,
		202301, 205892, 209516, 213174, 216865, 220589, 224347, 228139, 231964, 235822, 239715, 243641,
		247601, 251594, 255621, 259682, 263777, 267906, 272069, 276265, 280496, 284760, 289059, 293391,
		297758, 302159, 306593, 311062, 315566, 320103, 324675, 329280, 333921, 338595, 343304, 348047,
		352825, 357637, 362483, 367364, 372280, 377230, 382214, 387233, 392287, 397375, 402498, 407656,
		412848, 418075, 423337, 428634, 433965, 439332, 444733, 450169, 455640, 461146, 466686, 472262,
		477873, 483519, 489200, 494916, 500667, 506453, 512274, 518130, 524022, 529949, 535911, 541908,
		547941, 554008, 560111, 566250, 572424, 578633, 584878, 591158, 597473, 603824, 610211, 616633,
		623090, 629583, 636112, 642676, 649276, 655911, 662582, 669289, 676031, 682810, 689623, 696473,
		703359, 710280, 717237, 724230, 731258, 738323, 745424, 752560, 759732, 766941, 774185, 781465,
		788781, 796134, 803522, 810947, 818407, 825904, 833436, 841005, 848610, 856251, 863929, 871642,
		879392, 887178, 895001, 902859, 910754, 918686, 926653, 934657, 942698, 950774, 958887, 967037,
		975223, 983446, 991705, 1000000,
	},
	G213: {
		0, 7, 33, 78, 143, 231, 340, 472, 628, 807, 1009, 1237,
		1488, 1765, 2067, 2394, 2747, 3126, 3530, 3961, 4418, 4902, 5413, 5950,
		6515, 7107, 7726, 8373, 9047, 9749, 10479, 11238, 12024, 12838, 13681, 14552,
		15452, 16381, 17338, 18325, 19340, 20384, 21458, 22561, 23693, 24855, 26046, 27267,
		28518, 29798, 31108, 32448, 33819, 35219, 36650, 38110, 39601, 41123, 42675, 44257,
		45870, 47514, 49189, 50894, 52630, 54397, 56195, 58024, 59884, 61776, 63698, 65652,
		67638, 69654, 71702, 73782, 75893, 78036, 80210, 82417, 84655, 86925, 89226, 91560,
		93926, 96323, 98753, 101215, 103709, 106236, 108794, 111385, 114009, 116664, 119353, 122073,
		124827, 127612, 130431, 133282, 136166, 139083, 142033, 145015, 148030, 151078, 154160, 157274,
		160421, 163602, 166815, 170062, 173342, 176655, 180002, 183382, 186795, 190242, 193722, 197235,
		200782, 204363, 207977, 211625, 215307, 219022, 222771, 226554, 230370, 234221, 238105, 242023,
		245976, 249962, 253982, 258036, 262124, 266247, 270403, 274594, 278819, 283078, 287371, 291699,
		296061, 300458, 304888, 309354, 313853, 318388, 322956, 327560, 332197, 336870, 341577, 346319,
		351095, 355906, 360752, 365633, 370548, 375499, 380484, 385504, 390559, 395649, 400774, 405934,
		411129, 416359, 421624, 426925, 432260, 437631, 443036, 448477, 453954, 459465, 465012, 470594,
		476211, 481864, 487553, 493276, 499035, 504830, 510660, 516526, 522427, 528364, 534336, 540344,
		546388, 552467, 558582, 564733, 570919, 577142, 583400, 589694, 596023, 602389, 608790, 615228,
		621701, 628210, 634756, 641337, 647954, 654608, 661297, 668022, 674784, 681582, 688416, 695286,
		702192, 709135, 716113, 723128, 730180, 737267, 744391, 751552, 758748, 765981, 773251, 780557,
		787899, 795278, 802693, 810145, 817634, 825159, 832720, 840319, 847953, 855625, 863333, 871078,
		878859, 886678, 894533, 902424, 910353, 918318, 926320, 934359, 942435, 950548, 958698, 966884,
		975108, 983368, 991666, 1000000,
	},
	G215: {
		0, 7, 30, 71, 132, 213, 315, 439, 586, 754, 946, 1161,
		1400, 1663, 1950, 2262, 2599, 2961, 3348, 3761, 4199, 4663, 5154, 5671,
		6214, 6784, 7381, 8005, 8656, 9335, 10040, 10774, 11535, 12324, 13141, 13986,
		14859, 15761, 16691, 17649, 18637, 19653, 20698, 21772, 22875, 24007, 25169, 26360,
		27581, 28831, 30111, 31421, 32760, 34130, 35529, 36959, 38419, 39909, 41429, 42980,
		44562, 46174, 47817, 49490, 51195, 52930, 54696, 56494, 58322, 60182, 62073, 63995,
		65948, 67933, 69950, 71998, 74078, 76189, 78333, 80508, 82715, 84954, 87224, 89528,
		91863, 94230, 96630, 99062, 101526, 104022, 106552, 109113, 111708, 114334, 116994, 119686,
		122411, 125169, 127960, 130784, 133641, 136530, 139453, 142409, 145399, 148421, 151477, 154566,
		157688, 160844, 164034, 167257, 170513, 173803, 177127, 180484, 183875, 187300, 190759, 194252,
		197778, 201339, 204933, 208562, 212224, 215921, 219652, 223417, 227217, 231050, 234918, 238821,
		242757, 246729, 250734, 254775, 258849, 262959, 267103, 271282, 275495, 279743, 284026, 288344,
		292697, 297084, 301507, 305964, 310457, 314984, 319547, 324145, 328778, 333446, 338149, 342888,
		347661, 352471, 357315, 362195, 367110, 372061, 377047, 382069, 387126, 392219, 397348, 402512,
		407712, 412948, 418219, 423526, 428869, 434248, 439663, 445113, 450600, 456122, 461681, 467275,
		472906, 478572, 484275, 490014, 495789, 501600, 507448, 513332, 519252, 525208, 531201, 537230,
		543296, 549398, 555536, 561711, 567923, 574171, 580455, 586777, 593134, 599529, 605960, 612428,
		618933, 625474, 632052, 638668, 645319, 652008, 658734, 665497, 672296, 679133, 686006, 692917,
		699865, 706850, 713872, 720931, 728027, 735160, 742331, 749539, 756784, 764066, 771386, 778743,
		786138, 793569, 801039, 808545, 816089, 823671, 831290, 838947, 846641, 854373, 862143, 869950,
		877794, 885677, 893597, 901555, 909550, 917584, 925655, 933764, 941911, 950095, 958318, 966578,
		974877, 983213, 991588, 1000000,
	},
	G216: {
		0, 6, 28, 68, 127, 205, 304, 424, 566, 730, 916, 1125,
		1358, 1614, 1895, 2199, 2528, 2882, 3260, 3664, 4094, 4548, 5029, 5536,
		6069, 6629, 7215, 7827, 8467, 9134, 9828, 10549, 11298, 12074, 12879, 13711,
		14571, 15459, 16376, 17321, 18295, 19297, 20328, 21388, 22477, 23595, 24742, 25918,
		27124, 28359, 29624, 30919, 32243, 33598, 34982, 36396, 37841, 39315, 40820, 42356,
		43922, 45518, 47145, 48803, 50492, 52211, 53962, 55744, 57556, 59400, 61275, 63182,
		65120, 67089, 69090, 71122, 73186, 75282, 77410, 79570, 81761, 83985, 86240, 88528,
		90848, 93200, 95585, 98002, 100451, 102933, 105448, 107995, 110574, 113187, 115832, 118510,
		121221, 123965, 126742, 129552, 132395, 135272, 138181, 141124, 144100, 147110, 150153, 153229,
		156339, 159483, 162660, 165871, 169116, 172394, 175706, 179053, 182433, 185847, 189295, 192777,
		196293, 199843, 203428, 207047, 210700, 214387, 218109, 221865, 225656, 229481, 233341, 237235,
		241164, 245128, 249126, 253159, 257227, 261330, 265468, 269641, 273848, 278091, 282368, 286681,
		291029, 295412, 299830, 304284, 308772, 313297, 317856, 322451, 327081, 331747, 336448, 341185,
		345957, 350765, 355609, 360488, 365403, 370354, 375341, 380363, 385421, 390516, 395646, 400812,
		406014, 411252, 416527, 421837, 427184, 432566, 437985, 443441, 448932, 454460, 460024, 465624,
		471261, 476935, 482645, 488391, 494174, 499993, 505849, 511742, 517671, 523637, 529640, 535680,
		541756, 547869, 554019, 560206, 566430, 572691, 578989, 585323, 591695, 598104, 604550, 611033,
		617553, 624111, 630705, 637337, 644006, 650713, 657456, 664237, 671056, 677912, 684805, 691736,
		698704, 705710, 712753, 719834, 726953, 734109, 741303, 748534, 755804, 763111, 770455, 777838,
		785258, 792716, 800213, 807747, 815318, 822928, 830576, 838262, 845986, 853748, 861548, 869386,
		877262, 885177, 893129, 901120, 909149, 917217, 925322, 933466, 941649, 949869, 958128, 966426,
		974762, 983136, 991549, 1000000,
	},
	G218: {
		0, 6, 26, 62, 116, 189, 282, 395, 528, 682, 859, 1057,
		1277, 1521, 1788, 2078, 2392, 2730, 3092, 3479, 3890, 4327, 4789, 5276,
		5789, 6328, 6893, 7484, 8101, 8745, 9416, 10114, 10839, 11591, 12370, 13177,
		14011, 14874, 15764, 16683, 17629, 18604, 19608, 20640, 21700, 22790, 23909, 25056,
		26233, 27439, 28675, 29940, 31234, 32558, 33913, 35297, 36711, 38155, 39629, 41134,
		42669, 44235, 45831, 47457, 49115, 50803, 52523, 54273, 56055, 57867, 59711, 61587,
		63493, 65431, 67401, 69403, 71436, 73501, 75598, 77727, 79887, 82080, 84306, 86563,
		88853, 91175, 93530, 95917, 98336, 100789, 103274, 105792, 108343, 110926, 113543, 116193,
		118876, 121592, 124341, 127124, 129940, 132789, 135672, 138589, 141539, 144522, 147540, 150591,
		153676, 156795, 159948, 163135, 166356, 169611, 172900, 176223, 179581, 182973, 186400, 189861,
		193356, 196886, 200450, 204050, 207683, 211352, 215055, 218794, 222567, 226375, 230218, 234096,
		238009, 241957, 245941, 249960, 254014, 258103, 262228, 266388, 270584, 274815, 279081, 283384,
		287722, 292095, 296505, 300950, 305431, 309948, 314501, 319089, 323714, 328375, 333072, 337805,
		342574, 347379, 352221, 357099, 362013, 366963, 371950, 376974, 382034, 387131, 392264, 397433,
		402640, 407883, 413163, 418479, 423833, 429223, 434650, 440114, 445615, 451153, 456728, 462341,
		467990, 473676, 479400, 485161, 490959, 496794, 502667, 508577, 514525, 520510, 526533, 532593,
		538690, 544825, 550998, 557209, 563457, 569743, 576066, 582428, 588827, 595264, 601739, 608252,
		614803, 621392, 628019, 634684, 641387, 648129, 654908, 661726, 668582, 675476, 682409, 689379,
		696388, 703436, 710522, 717647, 724809, 732011, 739251, 746530, 753847, 761203, 768597, 776030,
		783502, 791013, 798563, 806151, 813779, 821445, 829150, 836894, 844677, 852499, 860360, 868260,
		876199, 884178, 892195, 900252, 908348, 916483, 924658, 932871, 941124, 949417, 957749, 966120,
		974531, 982981, 991471, 1000000,
	},
	G219: {
		0, 5, 24, 60, 112, 182, 272, 381, 510, 660, 831, 1024,
		1239, 1476, 1737, 2020, 2326, 2657, 3011, 3390, 3793, 4220, 4673, 5151,
		5654, 6183, 6737, 7318, 7924, 8557, 9217, 9903, 10616, 11356, 12123, 12918,
		13740, 14589, 15467, 16372, 17306, 18267, 19257, 20276, 21323, 22398, 23503, 24636,
		25799, 26990, 28211, 29462, 30741, 32051, 33390, 34759, 36158, 37587, 39047, 40536,
		42056, 43606, 45187, 46799, 48441, 50114, 51818, 53553, 55319, 57116, 58944, 60804,
		62695, 64618, 66572, 68558, 70576, 72626, 74707, 76821, 78967, 81145, 83355, 85597,
		87872, 90179, 92519, 94891, 97296, 99734, 102204, 104707, 107244, 109813, 112416, 115051,
		117720, 120422, 123158, 125927, 128729, 131565, 134435, 137338, 140275, 143246, 146250, 149289,
		152361, 155468, 158609, 161784, 164993, 168236, 171514, 174826, 178172, 181553, 184969, 188419,
		191904, 195424, 198978, 202567, 206191, 209850, 213545, 217274, 221038, 224837, 228672, 232542,
		236447, 240388, 244364, 248375, 252422, 256505, 260623, 264776, 268966, 273191, 277452, 281749,
		286082, 290451, 294856, 299297, 303774, 308287, 312836, 317422, 322043, 326702, 331396, 336127,
		340894, 345698, 350539, 355416, 360329, 365280, 370267, 375291, 380351, 385449, 390583, 395755,
		400963, 406208, 411491, 416810, 422167, 427561, 432992, 438460, 443966, 449509, 455089, 460707,
		466363, 472056, 477786, 483554, 489360, 495203, 501084, 507003, 512959, 518953, 524986, 531056,
		537164, 543310, 549494, 555716, 561976, 568274, 574611, 580985, 587398, 593849, 600339, 606867,
		613433, 620038, 626681, 633362, 640082, 646841, 653638, 660474, 667348, 674261, 681213, 688204,
		695234, 702302, 709409, 716555, 723740, 730964, 738227, 745529, 752870, 760251, 767670, 775128,
		782626, 790163, 797739, 805355, 813010, 820704, 828437, 836211, 844023, 851875, 859767, 867698,
		875668, 883679, 891729, 899818, 907947, 916117, 924325, 932574, 940863, 949191, 957559, 965967,
		974416, 982904, 991432, 1000000,
	},
	G22: {
		0, 5, 23, 57, 107, 175, 262, 367, 493, 638, 805, 992,
		1202, 1433, 1687, 1963, 2263, 2586, 2932, 3303, 3697, 4116, 4560, 5028,
		5522, 6041, 6585, 7155, 7751, 8373, 9021, 9696, 10398, 11126, 11881, 12664,
		13473, 14311, 15175, 16068, 16988, 17936, 18913, 19918, 20951, 22013, 23104, 24223,
		25371, 26549, 27755, 28991, 30257, 31551, 32876, 34230, 35614, 37029, 38473, 39947,
		41452, 42987, 44553, 46149, 47776, 49433, 51122, 52842, 54592, 56374, 58187, 60032,
		61907, 63815, 65754, 67725, 69727, 71761, 73828, 75926, 78057, 80219, 82414, 84642,
		86901, 89194, 91518, 93876, 96266, 98689, 101145, 103634, 106156, 108711, 111299, 113921,
		116576, 119264, 121986, 124741, 127530, 130352, 133209, 136099, 139022, 141980, 144972, 147998,
		151058, 154152, 157281, 160444, 163641, 166872, 170138, 173439, 176774, 180144, 183549, 186989,
		190463, 193972, 197516, 201096, 204710, 208360, 212044, 215764, 219520, 223310, 227137, 230998,
		234895, 238828, 242796, 246800, 250840, 254916, 259027, 263175, 267358, 271577, 275833, 280124,
		284452, 288816, 293216, 297653, 302125, 306635, 311180, 315763, 320382, 325037, 329729, 334458,
		339223, 344026, 348865, 353741, 358654, 363604, 368591, 373615, 378676, 383775, 388910, 394083,
		399293, 404541, 409826, 415148, 420508, 425905, 431340, 436813, 442323, 447871, 453456, 459080,
		464741, 470440, 476177, 481952, 487765, 493616, 499505, 505432, 511398, 517401, 523443, 529523,
		535642, 541798, 547994, 554227, 560499, 566810, 573159, 579547, 585973, 592438, 598942, 605484,
		612066, 618686, 625345, 632043, 638779, 645555, 652370, 659224, 666117, 673049, 680020, 687031,
		694081, 701170, 708298, 715465, 722672, 729919, 737205, 744530, 751895, 759300, 766744, 774227,
		781751, 789314, 796917, 804559, 812241, 819964, 827726, 835528, 843370, 851252, 859174, 867136,
		875138, 883180, 891262, 899385, 907547, 915750, 923993, 932277, 940601, 948965, 957370, 965815,
		974300, 982826, 991393, 1000000,
	},
	G222: {
		0, 5, 21, 52, 99, 162, 243, 342, 460, 597, 754, 932,
		1130, 1350, 1592, 1855, 2141, 2449, 2781, 3136, 3514, 3916, 4342, 4792,
		5267, 5766, 6291, 6841, 7416, 8017, 8644, 9296, 9975, 10680, 11412, 12171,
		12956, 13769, 14608, 15475, 16370, 17293, 18243, 19221, 20228, 21262, 22326, 23417,
		24538, 25687, 26865, 28073, 29309, 30575, 31871, 33196, 34551, 35935, 37350, 38795,
		40270, 41775, 43310, 44876, 46473, 48100, 49759, 51448, 53168, 54919, 56702, 58516,
		60361, 62238, 64147, 66087, 68059, 70063, 72099, 74167, 76268, 78400, 80565, 82763,
		84993, 87255, 89550, 91878, 94239, 96633, 99060, 101520, 104014, 106540, 109100, 111693,
		114320, 116981, 119675, 122403, 125164, 127960, 130790, 133653, 136551, 139483, 142449, 145450,
		148485, 151554, 154658, 157797, 160970, 164178, 167421, 170699, 174011, 177359, 180742, 184160,
		187613, 191102, 194625, 198185, 201779, 205410, 209076, 212777, 216514, 220288, 224096, 227941,
		231822, 235739, 239692, 243681, 247706, 251768, 255866, 260000, 264171, 268378, 272622, 276902,
		281220, 285573, 289964, 294392, 298856, 303357, 307896, 312471, 317083, 321733, 326420, 331144,
		335906, 340705, 345541, 350415, 355326, 360275, 365262, 370286, 375348, 380448, 385586, 390761,
		395975, 401226, 406516, 411843, 417209, 422613, 428056, 433536, 439055, 444612, 450208, 455842,
		461515, 467226, 472976, 478765, 484592, 490458, 496363, 502307, 508290, 514311, 520372, 526472,
		532610, 538788, 545005, 551261, 557557, 563892, 570266, 576680, 583133, 589625, 596157, 602729,
		609340, 615991, 622682, 629412, 636182, 642992, 649842, 656732, 663661, 670631, 677641, 684690,
		691780, 698910, 706080, 713291, 720542, 727833, 735164, 742536, 749948, 757401, 764894, 772428,
		780003, 787618, 795274, 802970, 810707, 818485, 826304, 834164, 842065, 850006, 857989, 866012,
		874077, 882183, 890330, 898518, 906747, 915018, 923330, 931683, 940077, 948513, 956990, 965509,
		974070, 982671, 991315, 1000000,
	},
	G225: {
		0, 4, 18, 46, 87, 144, 217, 307, 414, 540, 684, 848,
		1031, 1235, 1459, 1704, 1970, 2258, 2568, 2901, 3255, 3633, 4034, 4458,
		4906, 5378, 5875, 6395, 6940, 7511, 8106, 8727, 9373, 10045, 10743, 11467,
		12217, 12994, 13797, 14628, 15485, 16370, 17282, 18222, 19189, 20184, 21208, 22259,
		23339, 24447, 25584, 26750, 27944, 29168, 30421, 31703, 33015, 34356, 35727, 37128,
		38559, 40020, 41511, 43033, 44585, 46168, 47781, 49426, 51101, 52807, 54545, 56314,
		58114, 59946, 61810, 63705, 65632, 67591, 69582, 71605, 73661, 75749, 77869, 80022,
		82208, 84426, 86677, 88962, 91279, 93629, 96013, 98430, 100880, 103364, 105882, 108433,
		111018, 113637, 116290, 118977, 121698, 124454, 127243, 130067, 132926, 135819, 138747, 141709,
		144707, 147739, 150806, 153908, 157045, 160218, 163426, 166669, 169948, 173262, 176612, 179997,
		183418, 186875, 190368, 193897, 197462, 201063, 204700, 208374, 212084, 215830, 219613, 223432,
		227288, 231180, 235110, 239076, 243079, 247119, 251196, 255310, 259461, 263650, 267876, 272139,
		276440, 280778, 285153, 289567, 294018, 298506, 303033, 307597, 312200, 316840, 321519, 326235,
		330990, 335783, 340614, 345484, 350392, 355339, 360324, 365348, 370410, 375512, 380652, 385831,
		391048, 396305, 401601, 406936, 412310, 417723, 423175, 428667, 434198, 439769, 445379, 451028,
		456718, 462446, 468215, 474023, 479871, 485759, 491687, 497655, 503663, 509711, 515799, 521927,
		528095, 534304, 540553, 546843, 553173, 559543, 565954, 572406, 578898, 585431, 592005, 598619,
		605275, 611971, 618708, 625486, 632306, 639166, 646068, 653010, 659994, 667020, 674086, 681194,
		688344, 695535, 702768, 710042, 717357, 724715, 732114, 739555, 747038, 754563, 762129, 769738,
		777388, 785081, 792816, 800593, 808412, 816273, 824177, 832123, 840111, 848142, 856215, 864331,
		872489, 880690, 888933, 897220, 905548, 913920, 922335, 930792, 939293, 947836, 956422, 965051,
		973724, 982439, 991198, 1000000,
	},
}

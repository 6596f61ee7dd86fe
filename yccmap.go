package imagecore

// yccMap is the PhotoYCC correction curve indexed by 1024 times the
// normalized channel value.
var yccMap = [1389]float32{
	0.000000, 0.000720, 0.001441, 0.002161, 0.002882, 0.003602, 0.004323, 0.005043,
	0.005764, 0.006484, 0.007205, 0.007925, 0.008646, 0.009366, 0.010086, 0.010807,
	0.011527, 0.012248, 0.012968, 0.013689, 0.014409, 0.015130, 0.015850, 0.016571,
	0.017291, 0.018012, 0.018732, 0.019452, 0.020173, 0.020893, 0.021614, 0.022334,
	0.023055, 0.023775, 0.024496, 0.025216, 0.025937, 0.026657, 0.027378, 0.028098,
	0.028818, 0.029539, 0.030259, 0.030980, 0.031700, 0.032421, 0.033141, 0.033862,
	0.034582, 0.035303, 0.036023, 0.036744, 0.037464, 0.038184, 0.038905, 0.039625,
	0.040346, 0.041066, 0.041787, 0.042507, 0.043228, 0.043948, 0.044669, 0.045389,
	0.046110, 0.046830, 0.047550, 0.048271, 0.048991, 0.049712, 0.050432, 0.051153,
	0.051873, 0.052594, 0.053314, 0.054035, 0.054755, 0.055476, 0.056196, 0.056916,
	0.057637, 0.058357, 0.059078, 0.059798, 0.060519, 0.061239, 0.061960, 0.062680,
	0.063401, 0.064121, 0.064842, 0.065562, 0.066282, 0.067003, 0.067723, 0.068444,
	0.069164, 0.069885, 0.070605, 0.071326, 0.072046, 0.072767, 0.073487, 0.074207,
	0.074928, 0.075648, 0.076369, 0.077089, 0.077810, 0.078530, 0.079251, 0.079971,
	0.080692, 0.081412, 0.082133, 0.082853, 0.083573, 0.084294, 0.085014, 0.085735,
	0.086455, 0.087176, 0.087896, 0.088617, 0.089337, 0.090058, 0.090778, 0.091499,
	0.092219, 0.092939, 0.093660, 0.094380, 0.095101, 0.095821, 0.096542, 0.097262,
	0.097983, 0.098703, 0.099424, 0.100144, 0.100865, 0.101585, 0.102305, 0.103026,
	0.103746, 0.104467, 0.105187, 0.105908, 0.106628, 0.107349, 0.108069, 0.108790,
	0.109510, 0.110231, 0.110951, 0.111671, 0.112392, 0.113112, 0.113833, 0.114553,
	0.115274, 0.115994, 0.116715, 0.117435, 0.118156, 0.118876, 0.119597, 0.120317,
	0.121037, 0.121758, 0.122478, 0.123199, 0.123919, 0.124640, 0.125360, 0.126081,
	0.126801, 0.127522, 0.128242, 0.128963, 0.129683, 0.130403, 0.131124, 0.131844,
	0.132565, 0.133285, 0.134006, 0.134726, 0.135447, 0.136167, 0.136888, 0.137608,
	0.138329, 0.139049, 0.139769, 0.140490, 0.141210, 0.141931, 0.142651, 0.143372,
	0.144092, 0.144813, 0.145533, 0.146254, 0.146974, 0.147695, 0.148415, 0.149135,
	0.149856, 0.150576, 0.151297, 0.152017, 0.152738, 0.153458, 0.154179, 0.154899,
	0.155620, 0.156340, 0.157061, 0.157781, 0.158501, 0.159222, 0.159942, 0.160663,
	0.161383, 0.162104, 0.162824, 0.163545, 0.164265, 0.164986, 0.165706, 0.166427,
	0.167147, 0.167867, 0.168588, 0.169308, 0.170029, 0.170749, 0.171470, 0.172190,
	0.172911, 0.173631, 0.174352, 0.175072, 0.175793, 0.176513, 0.177233, 0.177954,
	0.178674, 0.179395, 0.180115, 0.180836, 0.181556, 0.182277, 0.182997, 0.183718,
	0.184438, 0.185159, 0.185879, 0.186599, 0.187320, 0.188040, 0.188761, 0.189481,
	0.190202, 0.190922, 0.191643, 0.192363, 0.193084, 0.193804, 0.194524, 0.195245,
	0.195965, 0.196686, 0.197406, 0.198127, 0.198847, 0.199568, 0.200288, 0.201009,
	0.201729, 0.202450, 0.203170, 0.203890, 0.204611, 0.205331, 0.206052, 0.206772,
	0.207493, 0.208213, 0.208934, 0.209654, 0.210375, 0.211095, 0.211816, 0.212536,
	0.213256, 0.213977, 0.214697, 0.215418, 0.216138, 0.216859, 0.217579, 0.218300,
	0.219020, 0.219741, 0.220461, 0.221182, 0.221902, 0.222622, 0.223343, 0.224063,
	0.224784, 0.225504, 0.226225, 0.226945, 0.227666, 0.228386, 0.229107, 0.229827,
	0.230548, 0.231268, 0.231988, 0.232709, 0.233429, 0.234150, 0.234870, 0.235591,
	0.236311, 0.237032, 0.237752, 0.238473, 0.239193, 0.239914, 0.240634, 0.241354,
	0.242075, 0.242795, 0.243516, 0.244236, 0.244957, 0.245677, 0.246398, 0.247118,
	0.247839, 0.248559, 0.249280, 0.250000, 0.250720, 0.251441, 0.252161, 0.252882,
	0.253602, 0.254323, 0.255043, 0.255764, 0.256484, 0.257205, 0.257925, 0.258646,
	0.259366, 0.260086, 0.260807, 0.261527, 0.262248, 0.262968, 0.263689, 0.264409,
	0.265130, 0.265850, 0.266571, 0.267291, 0.268012, 0.268732, 0.269452, 0.270173,
	0.270893, 0.271614, 0.272334, 0.273055, 0.273775, 0.274496, 0.275216, 0.275937,
	0.276657, 0.277378, 0.278098, 0.278818, 0.279539, 0.280259, 0.280980, 0.281700,
	0.282421, 0.283141, 0.283862, 0.284582, 0.285303, 0.286023, 0.286744, 0.287464,
	0.288184, 0.288905, 0.289625, 0.290346, 0.291066, 0.291787, 0.292507, 0.293228,
	0.293948, 0.294669, 0.295389, 0.296109, 0.296830, 0.297550, 0.298271, 0.298991,
	0.299712, 0.300432, 0.301153, 0.301873, 0.302594, 0.303314, 0.304035, 0.304755,
	0.305476, 0.306196, 0.306916, 0.307637, 0.308357, 0.309078, 0.309798, 0.310519,
	0.311239, 0.311960, 0.312680, 0.313401, 0.314121, 0.314842, 0.315562, 0.316282,
	0.317003, 0.317723, 0.318444, 0.319164, 0.319885, 0.320605, 0.321326, 0.322046,
	0.322767, 0.323487, 0.324207, 0.324928, 0.325648, 0.326369, 0.327089, 0.327810,
	0.328530, 0.329251, 0.329971, 0.330692, 0.331412, 0.332133, 0.332853, 0.333573,
	0.334294, 0.335014, 0.335735, 0.336455, 0.337176, 0.337896, 0.338617, 0.339337,
	0.340058, 0.340778, 0.341499, 0.342219, 0.342939, 0.343660, 0.344380, 0.345101,
	0.345821, 0.346542, 0.347262, 0.347983, 0.348703, 0.349424, 0.350144, 0.350865,
	0.351585, 0.352305, 0.353026, 0.353746, 0.354467, 0.355187, 0.355908, 0.356628,
	0.357349, 0.358069, 0.358790, 0.359510, 0.360231, 0.360951, 0.361671, 0.362392,
	0.363112, 0.363833, 0.364553, 0.365274, 0.365994, 0.366715, 0.367435, 0.368156,
	0.368876, 0.369597, 0.370317, 0.371037, 0.371758, 0.372478, 0.373199, 0.373919,
	0.374640, 0.375360, 0.376081, 0.376801, 0.377522, 0.378242, 0.378963, 0.379683,
	0.380403, 0.381124, 0.381844, 0.382565, 0.383285, 0.384006, 0.384726, 0.385447,
	0.386167, 0.386888, 0.387608, 0.388329, 0.389049, 0.389769, 0.390490, 0.391210,
	0.391931, 0.392651, 0.393372, 0.394092, 0.394813, 0.395533, 0.396254, 0.396974,
	0.397695, 0.398415, 0.399135, 0.399856, 0.400576, 0.401297, 0.402017, 0.402738,
	0.403458, 0.404179, 0.404899, 0.405620, 0.406340, 0.407061, 0.407781, 0.408501,
	0.409222, 0.409942, 0.410663, 0.411383, 0.412104, 0.412824, 0.413545, 0.414265,
	0.414986, 0.415706, 0.416427, 0.417147, 0.417867, 0.418588, 0.419308, 0.420029,
	0.420749, 0.421470, 0.422190, 0.422911, 0.423631, 0.424352, 0.425072, 0.425793,
	0.426513, 0.427233, 0.427954, 0.428674, 0.429395, 0.430115, 0.430836, 0.431556,
	0.432277, 0.432997, 0.433718, 0.434438, 0.435158, 0.435879, 0.436599, 0.437320,
	0.438040, 0.438761, 0.439481, 0.440202, 0.440922, 0.441643, 0.442363, 0.443084,
	0.443804, 0.444524, 0.445245, 0.445965, 0.446686, 0.447406, 0.448127, 0.448847,
	0.449568, 0.450288, 0.451009, 0.451729, 0.452450, 0.453170, 0.453891, 0.454611,
	0.455331, 0.456052, 0.456772, 0.457493, 0.458213, 0.458934, 0.459654, 0.460375,
	0.461095, 0.461816, 0.462536, 0.463256, 0.463977, 0.464697, 0.465418, 0.466138,
	0.466859, 0.467579, 0.468300, 0.469020, 0.469741, 0.470461, 0.471182, 0.471902,
	0.472622, 0.473343, 0.474063, 0.474784, 0.475504, 0.476225, 0.476945, 0.477666,
	0.478386, 0.479107, 0.479827, 0.480548, 0.481268, 0.481988, 0.482709, 0.483429,
	0.484150, 0.484870, 0.485591, 0.486311, 0.487032, 0.487752, 0.488473, 0.489193,
	0.489914, 0.490634, 0.491354, 0.492075, 0.492795, 0.493516, 0.494236, 0.494957,
	0.495677, 0.496398, 0.497118, 0.497839, 0.498559, 0.499280, 0.500000, 0.500720,
	0.501441, 0.502161, 0.502882, 0.503602, 0.504323, 0.505043, 0.505764, 0.506484,
	0.507205, 0.507925, 0.508646, 0.509366, 0.510086, 0.510807, 0.511527, 0.512248,
	0.512968, 0.513689, 0.514409, 0.515130, 0.515850, 0.516571, 0.517291, 0.518012,
	0.518732, 0.519452, 0.520173, 0.520893, 0.521614, 0.522334, 0.523055, 0.523775,
	0.524496, 0.525216, 0.525937, 0.526657, 0.527378, 0.528098, 0.528818, 0.529539,
	0.530259, 0.530980, 0.531700, 0.532421, 0.533141, 0.533862, 0.534582, 0.535303,
	0.536023, 0.536744, 0.537464, 0.538184, 0.538905, 0.539625, 0.540346, 0.541066,
	0.541787, 0.542507, 0.543228, 0.543948, 0.544669, 0.545389, 0.546109, 0.546830,
	0.547550, 0.548271, 0.548991, 0.549712, 0.550432, 0.551153, 0.551873, 0.552594,
	0.553314, 0.554035, 0.554755, 0.555476, 0.556196, 0.556916, 0.557637, 0.558357,
	0.559078, 0.559798, 0.560519, 0.561239, 0.561960, 0.562680, 0.563401, 0.564121,
	0.564842, 0.565562, 0.566282, 0.567003, 0.567723, 0.568444, 0.569164, 0.569885,
	0.570605, 0.571326, 0.572046, 0.572767, 0.573487, 0.574207, 0.574928, 0.575648,
	0.576369, 0.577089, 0.577810, 0.578530, 0.579251, 0.579971, 0.580692, 0.581412,
	0.582133, 0.582853, 0.583573, 0.584294, 0.585014, 0.585735, 0.586455, 0.587176,
	0.587896, 0.588617, 0.589337, 0.590058, 0.590778, 0.591499, 0.592219, 0.592939,
	0.593660, 0.594380, 0.595101, 0.595821, 0.596542, 0.597262, 0.597983, 0.598703,
	0.599424, 0.600144, 0.600865, 0.601585, 0.602305, 0.603026, 0.603746, 0.604467,
	0.605187, 0.605908, 0.606628, 0.607349, 0.608069, 0.608790, 0.609510, 0.610231,
	0.610951, 0.611671, 0.612392, 0.613112, 0.613833, 0.614553, 0.615274, 0.615994,
	0.616715, 0.617435, 0.618156, 0.618876, 0.619597, 0.620317, 0.621037, 0.621758,
	0.622478, 0.623199, 0.623919, 0.624640, 0.625360, 0.626081, 0.626801, 0.627522,
	0.628242, 0.628963, 0.629683, 0.630403, 0.631124, 0.631844, 0.632565, 0.633285,
	0.634006, 0.634726, 0.635447, 0.636167, 0.636888, 0.637608, 0.638329, 0.639049,
	0.639769, 0.640490, 0.641210, 0.641931, 0.642651, 0.643372, 0.644092, 0.644813,
	0.645533, 0.646254, 0.646974, 0.647695, 0.648415, 0.649135, 0.649856, 0.650576,
	0.651297, 0.652017, 0.652738, 0.653458, 0.654179, 0.654899, 0.655620, 0.656340,
	0.657061, 0.657781, 0.658501, 0.659222, 0.659942, 0.660663, 0.661383, 0.662104,
	0.662824, 0.663545, 0.664265, 0.664986, 0.665706, 0.666427, 0.667147, 0.667867,
	0.668588, 0.669308, 0.670029, 0.670749, 0.671470, 0.672190, 0.672911, 0.673631,
	0.674352, 0.675072, 0.675793, 0.676513, 0.677233, 0.677954, 0.678674, 0.679395,
	0.680115, 0.680836, 0.681556, 0.682277, 0.682997, 0.683718, 0.684438, 0.685158,
	0.685879, 0.686599, 0.687320, 0.688040, 0.688761, 0.689481, 0.690202, 0.690922,
	0.691643, 0.692363, 0.693084, 0.693804, 0.694524, 0.695245, 0.695965, 0.696686,
	0.697406, 0.698127, 0.698847, 0.699568, 0.700288, 0.701009, 0.701729, 0.702450,
	0.703170, 0.703891, 0.704611, 0.705331, 0.706052, 0.706772, 0.707493, 0.708213,
	0.708934, 0.709654, 0.710375, 0.711095, 0.711816, 0.712536, 0.713256, 0.713977,
	0.714697, 0.715418, 0.716138, 0.716859, 0.717579, 0.718300, 0.719020, 0.719741,
	0.720461, 0.721182, 0.721902, 0.722622, 0.723343, 0.724063, 0.724784, 0.725504,
	0.726225, 0.726945, 0.727666, 0.728386, 0.729107, 0.729827, 0.730548, 0.731268,
	0.731988, 0.732709, 0.733429, 0.734150, 0.734870, 0.735591, 0.736311, 0.737032,
	0.737752, 0.738473, 0.739193, 0.739914, 0.740634, 0.741354, 0.742075, 0.742795,
	0.743516, 0.744236, 0.744957, 0.745677, 0.746398, 0.747118, 0.747839, 0.748559,
	0.749280, 0.750000, 0.750720, 0.751441, 0.752161, 0.752882, 0.753602, 0.754323,
	0.755043, 0.755764, 0.756484, 0.757205, 0.757925, 0.758646, 0.759366, 0.760086,
	0.760807, 0.761527, 0.762248, 0.762968, 0.763689, 0.764409, 0.765130, 0.765850,
	0.766571, 0.767291, 0.768012, 0.768732, 0.769452, 0.770173, 0.770893, 0.771614,
	0.772334, 0.773055, 0.773775, 0.774496, 0.775216, 0.775937, 0.776657, 0.777378,
	0.778098, 0.778818, 0.779539, 0.780259, 0.780980, 0.781700, 0.782421, 0.783141,
	0.783862, 0.784582, 0.785303, 0.786023, 0.786744, 0.787464, 0.788184, 0.788905,
	0.789625, 0.790346, 0.791066, 0.791787, 0.792507, 0.793228, 0.793948, 0.794669,
	0.795389, 0.796109, 0.796830, 0.797550, 0.798271, 0.798991, 0.799712, 0.800432,
	0.801153, 0.801873, 0.802594, 0.803314, 0.804035, 0.804755, 0.805476, 0.806196,
	0.806916, 0.807637, 0.808357, 0.809078, 0.809798, 0.810519, 0.811239, 0.811960,
	0.812680, 0.813401, 0.814121, 0.814842, 0.815562, 0.816282, 0.817003, 0.817723,
	0.818444, 0.819164, 0.819885, 0.820605, 0.821326, 0.822046, 0.822767, 0.823487,
	0.824207, 0.824928, 0.825648, 0.826369, 0.827089, 0.827810, 0.828530, 0.829251,
	0.829971, 0.830692, 0.831412, 0.832133, 0.832853, 0.833573, 0.834294, 0.835014,
	0.835735, 0.836455, 0.837176, 0.837896, 0.838617, 0.839337, 0.840058, 0.840778,
	0.841499, 0.842219, 0.842939, 0.843660, 0.844380, 0.845101, 0.845821, 0.846542,
	0.847262, 0.847983, 0.848703, 0.849424, 0.850144, 0.850865, 0.851585, 0.852305,
	0.853026, 0.853746, 0.854467, 0.855187, 0.855908, 0.856628, 0.857349, 0.858069,
	0.858790, 0.859510, 0.860231, 0.860951, 0.861671, 0.862392, 0.863112, 0.863833,
	0.864553, 0.865274, 0.865994, 0.866715, 0.867435, 0.868156, 0.868876, 0.869597,
	0.870317, 0.871037, 0.871758, 0.872478, 0.873199, 0.873919, 0.874640, 0.875360,
	0.876081, 0.876801, 0.877522, 0.878242, 0.878963, 0.879683, 0.880403, 0.881124,
	0.881844, 0.882565, 0.883285, 0.884006, 0.884726, 0.885447, 0.886167, 0.886888,
	0.887608, 0.888329, 0.889049, 0.889769, 0.890490, 0.891210, 0.891931, 0.892651,
	0.893372, 0.894092, 0.894813, 0.895533, 0.896254, 0.896974, 0.897695, 0.898415,
	0.899135, 0.899856, 0.900576, 0.901297, 0.902017, 0.902738, 0.903458, 0.904179,
	0.904899, 0.905620, 0.906340, 0.907061, 0.907781, 0.908501, 0.909222, 0.909942,
	0.910663, 0.911383, 0.912104, 0.912824, 0.913545, 0.914265, 0.914986, 0.915706,
	0.916427, 0.917147, 0.917867, 0.918588, 0.919308, 0.920029, 0.920749, 0.921470,
	0.922190, 0.922911, 0.923631, 0.924352, 0.925072, 0.925793, 0.926513, 0.927233,
	0.927954, 0.928674, 0.929395, 0.930115, 0.930836, 0.931556, 0.932277, 0.932997,
	0.933718, 0.934438, 0.935158, 0.935879, 0.936599, 0.937320, 0.938040, 0.938761,
	0.939481, 0.940202, 0.940922, 0.941643, 0.942363, 0.943084, 0.943804, 0.944524,
	0.945245, 0.945965, 0.946686, 0.947406, 0.948127, 0.948847, 0.949568, 0.950288,
	0.951009, 0.951729, 0.952450, 0.953170, 0.953891, 0.954611, 0.955331, 0.956052,
	0.956772, 0.957493, 0.958213, 0.958934, 0.959654, 0.960375, 0.961095, 0.961816,
	0.962536, 0.963256, 0.963977, 0.964697, 0.965418, 0.966138, 0.966859, 0.967579,
	0.968300, 0.969020, 0.969741, 0.970461, 0.971182, 0.971902, 0.972622, 0.973343,
	0.974063, 0.974784, 0.975504, 0.976225, 0.976945, 0.977666, 0.978386, 0.979107,
	0.979827, 0.980548, 0.981268, 0.981988, 0.982709, 0.983429, 0.984150, 0.984870,
	0.985591, 0.986311, 0.987032, 0.987752, 0.988473, 0.989193, 0.989914, 0.990634,
	0.991354, 0.992075, 0.992795, 0.993516, 0.994236, 0.994957, 0.995677, 0.996398,
	0.997118, 0.997839, 0.998559, 0.999280, 1.000000,
}
